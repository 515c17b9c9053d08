package cli

import (
	"context"
	"fmt"
)

func (a *App) Delete(ctx context.Context, args []string) error {

	if len(args) == 0 {
		fmt.Println("Usage: delete <n>")
		return nil
	}

	cached, err := a.taskByNumber(args[0])
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if err := a.api.DeleteTask(ctx, cached.ID); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Deleted task %q\n", cached.Title)
	return nil
}
