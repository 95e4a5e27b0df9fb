package main

import (
	"fmt"
	"os"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
