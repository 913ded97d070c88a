package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skill-runner/internal/profile"
	"github.com/vovakirdan/skill-runner/internal/storage"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show a profile's wallet and inventory",
	Long: `Show money, high score and owned abilities for a profile. With
--list, print every stored profile name instead.

Examples:
  runner profile
  runner profile --profile alice
  runner profile --list`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

var shopCmd = &cobra.Command{
	Use:   "shop [item]",
	Short: "Show the shop or buy an item",
	Long: `Without arguments, list what is for sale. With an item name, buy it
for the active profile.

Items:
  shotgun  - one shotgun charge
  x2       - doubles dodge points for the next run

Examples:
  runner shop
  runner shop shotgun
  runner shop x2 --profile alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShop,
}

var flagListProfiles bool

func init() {
	profileCmd.Flags().BoolVar(&flagListProfiles, "list", false, "List stored profiles")
	shopCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML (for prices)")
}

func runProfile(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if flagListProfiles {
		names, err := store.Profiles()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No profiles yet.")
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	data, err := store.LoadProfile(profileName())
	if err != nil {
		return err
	}

	multiplier := "no"
	if data.PlayerSkills.ExtraScore {
		multiplier = "yes"
	}

	fmt.Printf("Profile:    %s\n", profileName())
	fmt.Printf("Money:      %d\n", data.Money)
	fmt.Printf("High score: %d\n", data.HighScore)
	fmt.Printf("Shotguns:   %d\n", data.PlayerSkills.ShotgunSkill)
	fmt.Printf("x2 ready:   %s\n", multiplier)
	fmt.Printf("Skin:       %s\n", data.Skin)
	return nil
}

func runShop(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	prices := cfg.Economy.Prices

	if len(args) == 0 {
		fmt.Println("Shop")
		fmt.Println()
		for _, offer := range profile.Catalog(prices) {
			fmt.Printf("  %-8s  %5d  %s\n", offer.Item, offer.Price, offer.Desc)
		}
		return nil
	}

	item, err := profile.ParseItem(args[0])
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	data, err := store.LoadProfile(profileName())
	if err != nil {
		return err
	}

	if err := profile.Buy(data, item, prices); err != nil {
		if errors.Is(err, profile.ErrAlreadyOwned) {
			fmt.Printf("%s already owns %s\n", profileName(), item)
			return nil
		}
		return err
	}
	if err := store.SaveProfile(profileName(), data); err != nil {
		return err
	}

	fmt.Printf("Bought %s. Money left: %d\n", item, data.Money)
	return nil
}
