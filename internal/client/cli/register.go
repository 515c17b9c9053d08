package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskvault/internal/common"
)

func (a *App) Register(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
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

	user, err := a.api.Register(ctx, email, string(password), name)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.userName = user.Name
	fmt.Printf("Registered as %s\n", user.Email)
	return nil
}
