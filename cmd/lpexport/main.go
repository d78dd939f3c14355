package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"landing-builder-backend/pkg/logger"
)

func main() {
	logger.Init()
	logger.SetLevel("warn")
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
