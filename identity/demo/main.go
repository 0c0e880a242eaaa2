package main

/*
两个典型用例跑一遍接口、泛型、手写分派三种写法，输出 JSON 报告。

运行：go run . -pretty -v

任一用例结果与预期不符，或三种写法之间不一致，进程以退出码1结束。
*/

import (
	"flag"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	pretty  = flag.Bool("pretty", false, "indent the JSON report")
	verbose = flag.Bool("v", false, "enable debug logging")
)

func setupLog(debug bool) error {
	var c logx.LogConf
	if err := conf.FillDefault(&c); err != nil {
		return fmt.Errorf("fill log defaults: %w", err)
	}
	c.ServiceName = "nicename-demo"
	c.Encoding = "plain"
	c.Stat = false
	if debug {
		c.Level = "debug"
	}
	return logx.SetUp(c)
}

func encode(verdicts []verdict, indent bool) ([]byte, error) {
	if indent {
		return sonic.ConfigDefault.MarshalIndent(verdicts, "", "  ")
	}
	return sonic.Marshal(verdicts)
}

func run() error {
	verdicts := evaluate()
	for _, v := range verdicts {
		logx.Debugw("evaluated",
			logx.Field("subject", v.Subject),
			logx.Field("name", v.Name),
			logx.Field("interface", v.Interface),
			logx.Field("generic", v.Generic),
			logx.Field("manual", v.Manual),
		)
	}

	out, err := encode(verdicts, *pretty)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	fmt.Println(string(out))

	if err := check(verdicts); err != nil {
		return err
	}
	logx.Infow("all renditions agree", logx.Field("cases", len(verdicts)))
	return nil
}

func main() {
	flag.Parse()

	if err := setupLog(*verbose); err != nil {
		fmt.Fprintf(os.Stderr, "setup log: %v\n", err)
		os.Exit(1)
	}

	err := run()
	if err != nil {
		logx.Errorw("demo failed", logx.Field("error", err.Error()))
	}
	_ = logx.Close()
	if err != nil {
		os.Exit(1)
	}
}
