package args_test

import (
	"fmt"
	"os"

	"github.com/mattforni/go-args"
	"github.com/mattforni/go-args/validate"
)

func Example() {
	// Declare the registry and the options it accepts
	a := args.New("iterate", "Print a greeting a fixed number of times")
	a.Flag("h", "help", "Print the usage menu")
	args.Option[int](a, "i", "iter", "The number of times to iterate", "TIMES", args.Required)
	args.Option[string](a, "l", "log_file", "The log file location", "PATH", args.Optional, "output.log")

	// Parse cmdline arguments, os.Args[1:] outside of tests
	err := a.Parse([]string{"--iter", "3"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	// Values come back typed, validations run on read
	iterations, err := args.ValidatedValueOf[int](a, "iter",
		validate.NewOrder(validate.GreaterThan, 0),
		validate.NewOrder(validate.LessThanOrEqual, 10))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	logFile, _ := args.ValueOf[string](a, "log_file")
	fmt.Printf("iterations: %d, log: %s\n", iterations, logFile)

	// Output:
	// iterations: 3, log: output.log
}

func ExampleArgs_Parse_invalidValue() {
	a := args.New("iterate", "")
	args.Option[int](a, "i", "iter", "The number of times to iterate", "TIMES", args.Required)

	err := a.Parse([]string{"--iter", "banana"})
	fmt.Println(err)

	// Output:
	// iter: unable to parse 'banana' as int
}

func ExampleArgs_Parse_missingRequired() {
	a := args.New("iterate", "")
	args.Option[int](a, "i", "iter", "The number of times to iterate", "TIMES", args.Required)

	err := a.Parse([]string{})
	fmt.Println(err)

	// Output:
	// Missing required parameter 'iter'
}

func ExampleValidatedValueOf() {
	a := args.New("iterate", "")
	args.Option[int](a, "i", "iter", "The number of times to iterate", "TIMES", args.Required)

	if err := a.Parse([]string{"-i", "15"}); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	_, err := args.ValidatedValueOf[int](a, "iter",
		validate.NewOrder(validate.GreaterThan, 0),
		validate.NewOrder(validate.LessThanOrEqual, 10))
	fmt.Println(err)

	// Output:
	// iter: 15 is not less than or equal to 10
}

func ExampleArgs_ShortUsage() {
	a := args.New("iterate", "")
	a.Flag("h", "help", "Print the usage menu")
	args.Option[int](a, "i", "iter", "The number of times to iterate", "TIMES", args.Required)

	fmt.Print(a.ShortUsage())

	// Output:
	// SYNOPSIS:
	//     iterate -i|--iter <TIMES> [-h|--help]
}
