// kview 是一个诊断工具：打印构建目标，并对每个参数的视图做一次下标探测。
//
//	go run ./cmd/kview -index 5 abc hello
//	go run -tags accel ./cmd/kview -index 5 abc
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	kview "kView"
	"kView/target"

	"google.golang.org/grpc/status"
)

func main() {
	index := flag.Int("index", 0, "index to probe in each argument")
	flag.Parse()

	log.Printf("[kView] built for %s target", target.Name)
	failed := false
	for _, arg := range flag.Args() {
		if !probe(kview.Literal(arg), *index) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// probe 输出视图内容与长度，并报告下标探测结果。越界时返回 false。
func probe(v kview.View, i int) bool {
	if _, err := v.WriteTo(os.Stdout); err != nil {
		log.Fatalln("[kView] write failed:", err)
	}
	fmt.Printf("\tlen=%d", v.Len())

	c, err := v.Index(i)
	var re *kview.RangeError
	if errors.As(err, &re) {
		fmt.Println()
		log.Printf("[kView] probe failed (%s): %v", status.Code(err), err)
		return false
	}
	fmt.Printf("\t[%d]=%q\n", i, c)
	return true
}
