package main

import "github.com/featurelab/keypoints/internal/cli"

func main() {
	cli.Execute()
}
