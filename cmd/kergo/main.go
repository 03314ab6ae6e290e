// Package main provides the kergo CLI: quick inspection of model files and
// datasets in kergo's persistence formats.
package main

import (
	"fmt"
	"os"

	"github.com/kergo-ml/kergo/dataset"
	"github.com/kergo-ml/kergo/model"
)

const version = "v0.1.0-dev"

func usage() {
	fmt.Println("kergo - persistence tooling for kernel classifiers")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                 Show version")
	fmt.Println("  inspect <model>         Summarize a stored model")
	fmt.Println("  stats [-u] <dataset>    Summarize a dataset (-u: unlabeled)")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("kergo %s\n", version)
	case "inspect":
		if len(os.Args) != 3 {
			usage()
			os.Exit(2)
		}
		if err := inspect(os.Args[2]); err != nil {
			fmt.Fprintln(os.Stderr, "kergo:", err)
			os.Exit(1)
		}
	case "stats":
		args := os.Args[2:]
		labeled := true
		if len(args) > 0 && args[0] == "-u" {
			labeled = false
			args = args[1:]
		}
		if len(args) != 1 {
			usage()
			os.Exit(2)
		}
		if err := stats(args[0], labeled); err != nil {
			fmt.Fprintln(os.Stderr, "kergo:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func inspect(path string) error {
	m, err := model.ReadFile(path)
	if err != nil {
		return err
	}
	defer m.Release()

	fmt.Printf("kernel:          %s\n", m.Kernel())
	fmt.Printf("hyperparameters: %d\n", len(m.Hyper()))
	fmt.Printf("bias:            %g\n", m.Bias())
	fmt.Printf("support vectors: %d\n", m.Len())
	fmt.Printf("stored features: %d\n", m.NElem())
	fmt.Printf("max dimension:   %d\n", m.MaxDim())
	return nil
}

func stats(path string, labeled bool) error {
	var (
		d   *dataset.Dataset
		err error
	)
	if labeled {
		d, err = dataset.LoadLabeledFile(path)
	} else {
		d, err = dataset.LoadUnlabeledFile(path)
	}
	if err != nil {
		return err
	}
	defer d.Release()

	fmt.Printf("samples:         %d\n", d.Len())
	fmt.Printf("labeled:         %v\n", d.Labeled())
	fmt.Printf("stored features: %d\n", d.NumFeatures())
	fmt.Printf("max dimension:   %d\n", d.MaxDim())
	return nil
}
