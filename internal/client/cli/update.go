package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskvault/internal/client/api"
)

func (a *App) Update(ctx context.Context, args []string) error {

	if len(args) == 0 {
		fmt.Println("Usage: update <n>")
		return nil
	}

	cached, err := a.taskByNumber(args[0])
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	// An empty answer keeps the current value.
	var req api.UpdateTaskRequest

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Enter title [%s]", cached.Title), os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if title != "" {
		req.Title = &title
	}

	description, err := GetSimpleText(a.reader, "Enter description (empty to keep)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if description != "" {
		req.Description = &description
	}

	status, err := GetSimpleText(a.reader, fmt.Sprintf("Enter status [%s]", cached.Status), os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if status != "" {
		req.Status = &status
	}

	task, err := a.api.UpdateTask(ctx, cached.ID, req)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Updated task %q\n", task.Title)
	return nil
}
