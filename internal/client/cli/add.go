package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Add(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	description, err := GetSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	status, err := GetSimpleText(a.reader, "Enter status (pending, in-progress, completed)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if status == "" {
		status = "pending"
	}

	task, err := a.api.CreateTask(ctx, title, description, status)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Created task %q\n", task.Title)
	return nil
}
