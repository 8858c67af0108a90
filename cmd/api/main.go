package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title       Document Processing API
// @version     1.0
// @description Upload images and PDFs, rotate images and flatten PDFs into one image.
// @BasePath    /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
