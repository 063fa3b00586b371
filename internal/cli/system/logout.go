package system

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/cli"
)

type LogoutCmd struct{}

func (cmd *LogoutCmd) Run(appCtx *cli.Context) error {
	if err := appCtx.Keyring.Invalidate(context.Background()); err != nil {
		return err
	}
	fmt.Println("Credential removed from the system keyring")
	return nil
}
