package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the deferfmtctl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("deferfmtctl", rootCmd.Version)
		},
	})
}
