package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rob"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the container lifecycle",
	Long:  `Demo borrows a value, reads it, upgrades it copy-on-write, and releases it, narrating each state transition`,
	RunE:  runDemo,
}

var (
	stateColor = color.New(color.FgYellow, color.Bold)
	stepColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgRed, color.Bold)
)

func runDemo(cmd *cobra.Command, args []string) error {
	external := "hello from the external owner"

	stepColor.Println("borrowing the external string")
	r := rob.FromRef(&external)
	fmt.Printf("  value: %q\n", *r.Get())
	stateColor.Printf("  owned: %v\n", r.IsOwned())

	if p, ok := r.AsRef(); ok {
		stepColor.Println("AsRef reports the external reference while borrowed")
		fmt.Printf("  aliases external: %v\n", p == &external)
	}

	stepColor.Println("upgrading copy-on-write via ToMut")
	m := rob.ToMutFunc(&r, func(s string) string { return s })
	*m = "mutated without touching the owner"
	stateColor.Printf("  owned: %v\n", r.IsOwned())
	fmt.Printf("  container: %q\n", *r.Get())
	fmt.Printf("  external untouched: %q\n", external)

	if _, ok := r.AsRef(); !ok {
		stepColor.Println("AsRef is absent now that the value is owned")
	}

	stepColor.Println("releasing the owned allocation")
	r.Release()

	stepColor.Println("releasing twice violates the lifecycle contract")
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				if cerr, ok := rec.(*rob.ContractError); ok {
					warnColor.Printf("  recovered: %v\n", cerr)
					return
				}
				panic(rec)
			}
		}()
		r.Release()
	}()
	return nil
}
