package cli

import (
	"context"
	"fmt"
)

func (a *App) List(ctx context.Context, args []string) error {

	status := ""
	if len(args) > 0 {
		status = args[0]
	}

	tasks, err := a.api.ListTasks(ctx, status)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.lastList = tasks

	if len(tasks) == 0 {
		fmt.Println("No tasks")
		return nil
	}

	for i, t := range tasks {
		fmt.Printf("%d. [%s] %s\n", i+1, t.Status, t.Title)
	}
	return nil
}
