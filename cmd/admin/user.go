package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/trainrec-backend/internal/app"
	"github.com/heartmarshall/trainrec-backend/internal/domain"
	usersvc "github.com/heartmarshall/trainrec-backend/internal/service/user"
)

func parseRole(s string) (domain.UserRole, error) {
	role := domain.UserRole(strings.ToUpper(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

func newUserCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage local accounts for CAS users.",
	}

	var add usersvc.CreateUserInput
	var addRole string
	addCmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Register a CAS username.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := parseRole(addRole)
			if err != nil {
				return err
			}
			add.Username = args[0]
			add.Role = role
			return e.withContainer(cmd.Context(), func(c *app.Container) error {
				u, err := c.Users.CreateUser(adminCtx(cmd.Context()), add)
				if err != nil {
					return err
				}
				printf(cmd, "created %s %s (%s)\n", u.ID, u.Username, u.Role)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&add.Email, "email", "", "e-mail address for notifications")
	addCmd.Flags().StringVar(&add.Name, "name", "", "display name")
	addCmd.Flags().StringVar(&add.Department, "department", "", "department, required for department reviewers")
	addCmd.Flags().StringVar(&addRole, "role", string(domain.UserRoleTeacher), "TEACHER, DEPARTMENT_REVIEWER, SCHOOL_REVIEWER or ADMIN")

	var setDept string
	setRoleCmd := &cobra.Command{
		Use:   "set-role <username> <role>",
		Short: "Change the role of a user.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := parseRole(args[1])
			if err != nil {
				return err
			}
			return e.withContainer(cmd.Context(), func(c *app.Container) error {
				target, err := c.UserRepo.GetByUsername(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("lookup %s: %w", args[0], err)
				}
				u, err := c.Users.SetUserRole(adminCtx(cmd.Context()), target.ID, usersvc.SetRoleInput{Role: role, Department: setDept})
				if err != nil {
					return err
				}
				printf(cmd, "%s is now %s\n", u.Username, u.Role)
				return nil
			})
		},
	}
	setRoleCmd.Flags().StringVar(&setDept, "department", "", "department, required for department reviewers")

	deactivateCmd := &cobra.Command{
		Use:   "deactivate <username>",
		Short: "Block a user from logging in.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withContainer(cmd.Context(), func(c *app.Container) error {
				target, err := c.UserRepo.GetByUsername(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("lookup %s: %w", args[0], err)
				}
				if err := c.Users.DeactivateUser(adminCtx(cmd.Context()), target.ID); err != nil {
					return err
				}
				printf(cmd, "deactivated %s\n", target.Username)
				return nil
			})
		},
	}

	var listRole string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users, optionally by role.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter *domain.UserRole
			if listRole != "" {
				role, err := parseRole(listRole)
				if err != nil {
					return err
				}
				filter = &role
			}
			return e.withContainer(cmd.Context(), func(c *app.Container) error {
				users, err := c.Users.ListUsers(adminCtx(cmd.Context()), filter)
				if err != nil {
					return err
				}
				for _, u := range users {
					printf(cmd, "%s\t%s\t%s\t%s\tactive=%t\n", u.ID, u.Username, u.Role, u.Department, u.IsActive)
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&listRole, "role", "", "only list users with this role")

	cmd.AddCommand(addCmd, setRoleCmd, deactivateCmd, listCmd)
	return cmd
}
