package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// opt is a single command-line option that may also come from the
// environment or the config file
type opt struct {
	destP interface{} // pointer to the destination
	flag  string
	dflt  interface{}
	desc  string
}

func newOpt(destP interface{}, flag string, dflt interface{}, desc string) opt {
	return opt{destP: destP, flag: flag, dflt: dflt, desc: desc}
}

// newViper returns a viper instance reading JASMINE_* variables, with "-"
// in flag names mapped to "_".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("JASMINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return v
}

// bindOptions adds opts to flags and registers them with v
func bindOptions(v *viper.Viper, flags *pflag.FlagSet, opts []opt) {
	for _, o := range opts {
		switch destP := o.destP.(type) {
		case *string:
			var d string
			if o.dflt != nil {
				d = o.dflt.(string)
			}
			flags.StringVar(destP, o.flag, d, o.desc)
		case *int:
			var d int
			if o.dflt != nil {
				d = o.dflt.(int)
			}
			flags.IntVar(destP, o.flag, d, o.desc)
		case *bool:
			var d bool
			if o.dflt != nil {
				d = o.dflt.(bool)
			}
			flags.BoolVar(destP, o.flag, d, o.desc)
		default:
			panic(fmt.Errorf("unknown destination type %T", o.destP))
		}
		if err := v.BindPFlag(o.flag, flags.Lookup(o.flag)); err != nil {
			panic(err)
		}
	}
}

// loadOptions copies the resolved values (flag, then env, then config
// file, then default) back into the destinations
func loadOptions(v *viper.Viper, opts []opt) {
	for _, o := range opts {
		switch destP := o.destP.(type) {
		case *string:
			*destP = v.GetString(o.flag)
		case *int:
			*destP = v.GetInt(o.flag)
		case *bool:
			*destP = v.GetBool(o.flag)
		}
	}
}
