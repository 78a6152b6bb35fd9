package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolioai/internal/types"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
	loginEmail       string
	loginPassword    string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a user account",
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print an API token",
	RunE:  runLogin,
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password (min 8 characters)")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	res, err := newAPIClient().Register(cmd.Context(), &types.RegisterRequest{
		Name:     registerName,
		Email:    registerEmail,
		Password: registerPassword,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Registered %s\nUser ID: %s\nToken: %s\n", res.User.Email, res.User.ID, res.Token)
	fmt.Println("Export PORTFOLIOAI_USER_ID and PORTFOLIOAI_TOKEN to use the workflow commands.")
	return nil
}

func runLogin(cmd *cobra.Command, _ []string) error {
	res, err := newAPIClient().Login(cmd.Context(), &types.LoginRequest{
		Email:    loginEmail,
		Password: loginPassword,
	})
	if err != nil {
		return err
	}
	fmt.Printf("User ID: %s\nToken: %s\n", res.User.ID, res.Token)
	return nil
}
