package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskvault/internal/common"
)

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.userName = user.Name
	fmt.Printf("Logged in as %s\n", user.Email)
	return nil
}

func (a *App) Logout() {
	a.api.SetToken("")
	a.userName = ""
	a.lastList = nil
	fmt.Println("Logged out")
}
