package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/wallet-dashboard/pkg/jwt"
)

var (
	tokenRole    string
	tokenMinutes int
)

var tokenCmd = &cobra.Command{
	Use:   "token <viewer-id>",
	Short: "Emite un Bearer Token de visualización firmado con JWT_SECRET",
	Args:  cobra.ExactArgs(1),
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenRole, "role", jwt.RoleViewer, "Rol del token (viewer|admin)")
	tokenCmd.Flags().IntVar(&tokenMinutes, "minutes", 0, "Vigencia en minutos (default: JWT_EXPIRATION_MINUTES)")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.JWT.Enabled() {
		return fmt.Errorf("JWT_SECRET no definido: la API es pública y no necesita token")
	}
	switch tokenRole {
	case jwt.RoleViewer, jwt.RoleAdmin:
	default:
		return fmt.Errorf("rol inválido %q (viewer|admin)", tokenRole)
	}
	minutes := tokenMinutes
	if minutes <= 0 {
		minutes = cfg.JWT.Expiration
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, args[0], tokenRole, cfg.JWT.Issuer, minutes)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
