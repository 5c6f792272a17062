package main

import "github.com/sh5080/utm-checker/pkg/serverless"

func main() {
	serverless.LambdaMain()
}
