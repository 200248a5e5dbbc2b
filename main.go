package main

import (
	"fmt"
	"os"

	"mayo-go/benchmark"
	"mayo-go/diag"
	"mayo-go/flags"
	standard "mayo-go/mayo"
)

func main() {
	args := flags.GetApplicationArguments()

	level := standard.SecurityLevel(args.ParameterSet)
	if level < standard.LevelOne || level > standard.LevelFive {
		level = standard.LevelOne
	}

	if args.AmountBenchmarkingSamples > 0 {
		path, err := benchmark.Run(level, args.AmountBenchmarkingSamples)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("wrote benchmark results to", path)
		return
	}

	fmt.Println(diag.DetectCPUFeatures())

	message := []byte("Hello, world!")
	mayo, err := standard.InitMayo(level)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cpk, csk, err := mayo.CompactKeyGen(standard.DefaultRandomSource)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	sig, err := mayo.Sign(csk, message, standard.DefaultRandomSource)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := mayo.Verify(cpk, message, sig); err != nil {
		fmt.Printf("signature on %q did not verify: %v\n", message, err)
		os.Exit(1)
	}
	fmt.Printf("signature on %q verified under %s\n", message, mayo)
}
