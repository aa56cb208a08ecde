package pref

import (
	"fmt"
	"strconv"

	"github.com/prefkit/prefkit/lib/pref"
	"github.com/prefkit/prefkit/lib/store"
	"github.com/spf13/cobra"
)

var (
	getCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Reads the value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if v, ok := prefStore.Get(key); ok {
				fmt.Printf("key=%s, found=true, kind=%s, value=%v\n", key, v.Kind(), v.Any())
			} else {
				fmt.Printf("key=%s, found=false\n", key)
			}
			return nil
		},
	}
	setCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Sets the typed value for a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			valueType, _ := cmd.Flags().GetString("type")
			v, err := parseTyped(valueType, args[1])
			if err != nil {
				return err
			}
			prefStore.Set(args[0], v)
			fmt.Println("set successfully")
			return nil
		},
	}
	hasCmd = &cobra.Command{
		Use:   "has [key]",
		Short: "Checks whether a key exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("key=%s, exists=%v\n", args[0], prefStore.Has(args[0]))
			return nil
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [key]",
		Short: "Removes a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefStore.Remove(args[0])
			fmt.Println("removed successfully")
			return nil
		},
	}
	defaultCmd = &cobra.Command{
		Use:   "default [key] [value]",
		Short: "Sets the typed value for a key only if the key is not already set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			valueType, _ := cmd.Flags().GetString("type")
			if err := setDefaultTyped(valueType, key, args[1]); err != nil {
				return err
			}
			if v, ok := prefStore.Get(key); ok {
				fmt.Printf("key=%s, value=%v\n", key, v.Any())
			}
			return nil
		},
	}
	incrCmd = &cobra.Command{
		Use:   "incr [key]",
		Short: "Increments an integer key by one (a missing key counts from zero)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pref.Inc(pref.NewMutable[int64](prefStore, args[0]))
			fmt.Printf("key=%s, value=%d\n", args[0], p.Get())
			return nil
		},
	}
	decrCmd = &cobra.Command{
		Use:   "decr [key]",
		Short: "Decrements an integer key by one (a missing key counts from zero)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pref.Dec(pref.NewMutable[int64](prefStore, args[0]))
			fmt.Printf("key=%s, value=%d\n", args[0], p.Get())
			return nil
		},
	}
	addCmd = &cobra.Command{
		Use:   "add [key] [n]",
		Short: "Adds n to a numeric key (a missing key counts from zero)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			valueType, _ := cmd.Flags().GetString("type")
			switch valueType {
			case "int":
				n, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("n must be an integer: %w", err)
				}
				p := pref.NewMutable[int64](prefStore, key)
				pref.AddAssign(p, n)
				fmt.Printf("key=%s, value=%d\n", key, p.Get())
			case "float":
				n, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("n must be a number: %w", err)
				}
				p := pref.NewMutable[float64](prefStore, key)
				pref.AddAssign(p, n)
				fmt.Printf("key=%s, value=%v\n", key, p.Get())
			default:
				return fmt.Errorf("type must be int or float, got %q", valueType)
			}
			return nil
		},
	}
	toggleCmd = &cobra.Command{
		Use:   "toggle [key]",
		Short: "Negates a boolean key (a missing key counts as false)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pref.NewMutable[bool](prefStore, args[0])
			cur := p.Get()
			pref.NotAssign(p, func() bool { return cur })
			fmt.Printf("key=%s, value=%v\n", args[0], p.Get())
			return nil
		},
	}
	sumCmd = &cobra.Command{
		Use:   "sum [n...]",
		Short: "Sums its numeric arguments (the empty sum is zero)",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float64, 0, len(args))
			for _, arg := range args {
				n, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("arguments must be numbers: %w", err)
				}
				values = append(values, n)
			}
			fmt.Printf("sum=%v\n", pref.SumSlice(values))
			return nil
		},
	}
)

func init() {
	// value type flags
	setCmd.Flags().String("type", "string", "Value type (string, int, uint, float, bool)")
	defaultCmd.Flags().String("type", "string", "Value type (string, int, uint, float, bool)")
	addCmd.Flags().String("type", "int", "Value type (int, float)")
}

// parseTyped parses a raw command-line argument into a store value of the
// requested type. Integers parse as int64 and uint64, matching what the
// typed accessor commands read back.
func parseTyped(valueType, raw string) (store.Value, error) {
	switch valueType {
	case "string":
		return store.MustValue(raw), nil
	case "int":
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return store.Value{}, fmt.Errorf("value must be an integer: %w", err)
		}
		return store.MustValue(n), nil
	case "uint":
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return store.Value{}, fmt.Errorf("value must be an unsigned integer: %w", err)
		}
		return store.MustValue(n), nil
	case "float":
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return store.Value{}, fmt.Errorf("value must be a number: %w", err)
		}
		return store.MustValue(n), nil
	case "bool":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return store.Value{}, fmt.Errorf("value must be a boolean: %w", err)
		}
		return store.MustValue(b), nil
	default:
		return store.Value{}, fmt.Errorf("unknown value type %q", valueType)
	}
}

// setDefaultTyped applies assign-if-absent with a typed operand.
func setDefaultTyped(valueType, key, raw string) error {
	v, err := parseTyped(valueType, raw)
	if err != nil {
		return err
	}

	switch valueType {
	case "string":
		s, _ := store.As[string](v)
		pref.SetDefault(pref.NewMutable[string](prefStore, key), func() string { return s })
	case "int":
		n, _ := store.As[int64](v)
		pref.SetDefault(pref.NewMutable[int64](prefStore, key), func() int64 { return n })
	case "uint":
		n, _ := store.As[uint64](v)
		pref.SetDefault(pref.NewMutable[uint64](prefStore, key), func() uint64 { return n })
	case "float":
		n, _ := store.As[float64](v)
		pref.SetDefault(pref.NewMutable[float64](prefStore, key), func() float64 { return n })
	case "bool":
		b, _ := store.As[bool](v)
		pref.SetDefault(pref.NewMutable[bool](prefStore, key), func() bool { return b })
	}
	return nil
}
