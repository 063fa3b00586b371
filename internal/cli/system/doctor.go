package system

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/notiplan/notiplan/internal/cli"
	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/keyring"
	"github.com/notiplan/notiplan/internal/notion"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(appCtx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: config store reachable
	cfgOK := false
	if err := appCtx.Store.Load(); err != nil {
		fmt.Printf("❌ Config store: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else if _, err := appCtx.Store.GetConfig(); err != nil {
		fmt.Printf("❌ Configuration: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Configuration: OK\n")
		cfgOK = true
	}

	// Check 2: keyring usable
	if !keyring.Available() {
		fmt.Printf("❌ System keyring: FAIL\n")
		fmt.Printf("   Error: keychain is not usable on this system\n")
		hasError = true
	} else if _, err := appCtx.Keyring.Credential(context.Background()); err != nil {
		fmt.Printf("❌ Stored credential: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Stored credential: OK\n")
	}

	// Check 3: remote API reachable (only with a working config)
	if cfgOK {
		if err := checkRemote(appCtx); err != nil {
			fmt.Printf("❌ Remote API: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Remote API: OK\n")
		}
	} else {
		fmt.Printf("⊘ Remote API: SKIPPED (no configuration)\n")
	}

	// Check 4: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 5: concurrent instances (warning only)
	if n := runningInstances(); n > 1 {
		fmt.Printf("⚠ Concurrent instances: WARNING\n")
		fmt.Printf("   %d %s processes are running; overlapping writes can race\n", n, constants.AppName)
	} else {
		fmt.Printf("✓ Concurrent instances: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed")
	return nil
}

func checkRemote(appCtx *cli.Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err = svc.Client.Search(ctx, notion.SearchRequest{
		Filter: &notion.SearchFilter{Value: "database", Property: "object"},
	})
	return err
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	return nil
}

func runningInstances() int {
	procs, err := ps.Processes()
	if err != nil {
		return 0
	}
	self := os.Getpid()
	count := 1
	for _, p := range procs {
		if p.Pid() != self && strings.Contains(p.Executable(), constants.AppName) {
			count++
		}
	}
	return count
}
