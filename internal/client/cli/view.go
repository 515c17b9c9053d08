package cli

import (
	"context"
	"fmt"
)

func (a *App) View(ctx context.Context, args []string) error {

	if len(args) == 0 {
		fmt.Println("Usage: view <n>")
		return nil
	}

	cached, err := a.taskByNumber(args[0])
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	task, err := a.api.GetTask(ctx, cached.ID)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Title:       %s\n", task.Title)
	fmt.Printf("Description: %s\n", task.Description)
	fmt.Printf("Status:      %s\n", task.Status)
	fmt.Printf("Created:     %s\n", task.CreatedAt.Local())
	fmt.Printf("Updated:     %s\n", task.UpdatedAt.Local())
	return nil
}
