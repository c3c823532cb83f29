package client

import (
	"flag"
	"fmt"
)

// EnumFlag registers a string flag that accepts only the listed values.
func EnumFlag(target *string, name string, safelist []string, usage string) {
	usageWithValues := fmt.Sprintf("%s, must be one of %v", usage, safelist)
	flag.Func(name, usageWithValues, func(flagValue string) error {
		for _, allowedValue := range safelist {
			if flagValue == allowedValue {
				*target = flagValue
				return nil
			}
		}
		return fmt.Errorf("must be one of %v", safelist)
	})
}

// AddServerFlag registers a flag to select which evaluation server to
// connect to. Pass the chosen value to ConnectByName.
func AddServerFlag(target *string, name string) {
	EnumFlag(target, name, []string{"local", "hosted", "lan"}, "Server to connect to")
}
