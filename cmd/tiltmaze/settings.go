package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiltmaze/internal/storage"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [get <key> | set <key> <value>]",
	Short: "Show or change settings",
	Long: `Show all settings, read one, or change one.

Keys:
  sensitivity  - Tilt multiplier, 0.4 to 2.5 (default 1.0)
  vibration    - on/off
  sound        - on/off

Examples:
  tiltmaze settings
  tiltmaze settings get sensitivity
  tiltmaze settings set sensitivity 1.5
  tiltmaze settings set sound off`,
	Args: cobra.RangeArgs(0, 3),
	Run:  runSettings,
}

func runSettings(cmd *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	if len(args) == 0 {
		st := mustSettings(store)
		fmt.Printf("sensitivity  %.1f\n", st.Sensitivity)
		fmt.Printf("vibration    %s\n", onOff(st.Vibration))
		fmt.Printf("sound        %s\n", onOff(st.Sound))
		return
	}

	switch args[0] {
	case "get":
		if len(args) != 2 {
			exitUsage(cmd, "get needs a key")
		}
		v, err := settingValue(mustSettings(store), args[1])
		if err != nil {
			exitUsage(cmd, err.Error())
		}
		fmt.Println(v)

	case "set":
		if len(args) != 3 {
			exitUsage(cmd, "set needs a key and a value")
		}
		if err := applySetting(store, args[1], args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		v, _ := settingValue(mustSettings(store), args[1])
		fmt.Printf("%s = %s\n", args[1], v)

	default:
		exitUsage(cmd, fmt.Sprintf("unknown action %q", args[0]))
	}
}

func mustSettings(store *storage.Store) storage.Settings {
	st, err := store.Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading settings: %v\n", err)
		os.Exit(1)
	}
	return st
}

func settingValue(st storage.Settings, key string) (string, error) {
	switch key {
	case "sensitivity":
		return strconv.FormatFloat(st.Sensitivity, 'f', 1, 64), nil
	case "vibration":
		return onOff(st.Vibration), nil
	case "sound":
		return onOff(st.Sound), nil
	}
	return "", fmt.Errorf("unknown setting %q", key)
}

func applySetting(store *storage.Store, key, value string) error {
	switch key {
	case "sensitivity":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid sensitivity %q: %w", value, err)
		}
		_, err = store.UpdateSensitivity(v)
		return err
	case "vibration", "sound":
		on, err := parseOnOff(value)
		if err != nil {
			return err
		}
		if key == "vibration" {
			return store.SetVibration(on)
		}
		return store.SetSound(on)
	}
	return fmt.Errorf("unknown setting %q", key)
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid value %q (want on or off)", s)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func exitUsage(cmd *cobra.Command, msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n\n", msg)
	cmd.Usage()
	os.Exit(1)
}
