// ABOUTME: CLI commands for managing the user profile.
// ABOUTME: Profile set merges flags into the singleton; show prints it.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/longevity/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileBirthYear int
	profileGender    string
	profileHeight    float64
	profileWeight    float64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
	Long: `Manage the profile used for life projections.

Birth year and gender drive the actuarial baseline. Height and weight are
stored for reference only.

EXAMPLES:

  longevity profile set --birth-year 1988 --gender male
  longevity profile set --height 180 --weight 78.5
  longevity profile show`,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set profile fields",
	Long: `Set one or more profile fields. Fields not given keep their current
values, so you can update height without restating your birth year.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		existing, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		p := &models.UserProfile{}
		if existing != nil {
			*p = *existing
		}

		if cmd.Flags().Changed("birth-year") {
			if profileBirthYear < 1900 || profileBirthYear > time.Now().Year() {
				return fmt.Errorf("implausible birth year: %d", profileBirthYear)
			}
			p.BirthYear = profileBirthYear
		}
		if cmd.Flags().Changed("gender") {
			g := models.Gender(profileGender)
			switch g {
			case models.GenderMale, models.GenderFemale, models.GenderUnspecified:
				p.Gender = g
			default:
				return fmt.Errorf("unknown gender: %s (use male, female, or unspecified)", profileGender)
			}
		}
		if cmd.Flags().Changed("height") {
			h := profileHeight
			p.HeightCm = &h
		}
		if cmd.Flags().Changed("weight") {
			w := profileWeight
			p.WeightKg = &w
		}

		if p.BirthYear == 0 {
			return fmt.Errorf("profile needs a birth year: longevity profile set --birth-year YYYY")
		}

		if err := repo.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile saved")
		printProfile(p)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if p == nil {
			fmt.Println("No profile set. Run 'longevity profile set --birth-year YYYY'.")
			return nil
		}
		printProfile(p)
		return nil
	},
}

func printProfile(p *models.UserProfile) {
	fmt.Printf("  Birth year: %d (age %d)\n", p.BirthYear, p.Age(time.Now()))
	fmt.Printf("  Gender:     %s\n", p.GetGender())
	if p.HeightCm != nil {
		fmt.Printf("  Height:     %.1f cm\n", *p.HeightCm)
	}
	if p.WeightKg != nil {
		fmt.Printf("  Weight:     %.1f kg\n", *p.WeightKg)
	}
}

func init() {
	profileSetCmd.Flags().IntVar(&profileBirthYear, "birth-year", 0, "year of birth")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male, female, or unspecified")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
