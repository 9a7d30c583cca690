package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"NZWalks-API/internal/auth"
	"NZWalks-API/internal/config"
)

// 開発用に reader / writer ロールのトークンを発行する。
// 署名鍵・発行者・対象者はサーバーと同じ NZWALKS_AUTH__* 環境変数から読む
func main() {
	subject := flag.String("user", "dev-user", "Subject of the token")
	roles := flag.String("roles", auth.RoleReader+","+auth.RoleWriter, "Comma separated roles")
	ttl := flag.Duration("ttl", 0, "Token lifetime (default: auth.token_ttl)")
	outputJSON := flag.Bool("json", false, "Output as JSON")
	flag.Parse()

	cfg, _, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	tokens, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating token manager: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nSet NZWALKS_AUTH__JWT_SECRET to the same value the server uses\n")
		os.Exit(1)
	}

	roleList := splitRoles(*roles)
	lifetime := *ttl
	if lifetime <= 0 {
		lifetime = cfg.Auth.TokenTTL
	}

	token, err := tokens.Issue(*subject, roleList, lifetime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int(lifetime.Seconds()),
			"user":         *subject,
			"roles":        roleList,
		})
		return
	}

	fmt.Println("Token Generated")
	fmt.Println("===============")
	fmt.Printf("User:     %s\n", *subject)
	fmt.Printf("Roles:    %s\n", strings.Join(roleList, ", "))
	fmt.Printf("Expires:  %s\n", time.Now().Add(lifetime).Format(time.RFC3339))
	fmt.Println()
	fmt.Println(token)
	fmt.Println()
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:%s/walks\n", token, cfg.Server.Port)
}

func splitRoles(s string) []string {
	var out []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
