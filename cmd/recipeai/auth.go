package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		resp, err := newClient(cmd).Login(cmd.Context(), username, password)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, resp.Message)
		if resp.User != nil && resp.User.Name != "" {
			fmt.Fprintf(out, "Welcome, %s\n", resp.User.Name)
		}
		fmt.Fprintf(out, "Token: %s\n", resp.Token)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := newClient(cmd).Logout(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("username", "", "Account username")
	loginCmd.Flags().String("password", "", "Account password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, logoutCmd)
}
