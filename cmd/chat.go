package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run the campaign interview in the terminal",
	Long:  `Starts an interactive terminal session against the in-process interview engine. Type 'exit' to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.close()

		userID := uuid.New().String()
		ctx := cmd.Context()

		reply, err := a.engine.ProcessMessage(ctx, userID, "")
		if err != nil {
			return err
		}
		fmt.Printf("\n%s\n\n", reply.Response)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			reply, err := a.engine.ProcessMessage(ctx, userID, line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("\n%s\n\n", reply.Response)

			if reply.IsComplete && reply.CampaignContent != nil {
				fmt.Printf("Campaign strategy: %s\n\n", reply.CampaignContent.CampaignStrategy.Overview)
			}
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
