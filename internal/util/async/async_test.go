package async

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
)

func TestRunParallel_Success(t *testing.T) {
	t.Parallel()
	var count atomic.Int32

	tasks := []Task{
		{Name: "servers", Func: func(_ context.Context) error {
			count.Add(1)
			return nil
		}},
		{Name: "volumes", Func: func(_ context.Context) error {
			count.Add(1)
			return nil
		}},
		{Name: "networks", Func: func(_ context.Context) error {
			count.Add(1)
			return nil
		}},
	}

	if err := RunParallel(context.Background(), tasks); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if count.Load() != 3 {
		t.Errorf("Expected all 3 tasks to run, got: %d", count.Load())
	}
}

func TestRunParallel_FirstErrorWins(t *testing.T) {
	t.Parallel()
	boom := errors.New("listing failed")

	tasks := []Task{
		{Name: "servers", Func: func(_ context.Context) error { return nil }},
		{Name: "volumes", Func: func(_ context.Context) error { return boom }},
	}

	err := RunParallel(context.Background(), tasks)
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped task error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "volumes") {
		t.Errorf("Expected task name in error, got: %v", err)
	}
}

func TestRunParallel_AllTasksRunDespiteFailure(t *testing.T) {
	t.Parallel()
	var count atomic.Int32

	tasks := []Task{
		{Name: "a", Func: func(_ context.Context) error {
			count.Add(1)
			return errors.New("a failed")
		}},
		{Name: "b", Func: func(_ context.Context) error {
			count.Add(1)
			return nil
		}},
	}

	if err := RunParallel(context.Background(), tasks); err == nil {
		t.Fatal("Expected an error")
	}
	if count.Load() != 2 {
		t.Errorf("Expected both tasks to run, got: %d", count.Load())
	}
}

func TestRunParallel_NoTasks(t *testing.T) {
	t.Parallel()
	if err := RunParallel(context.Background(), nil); err != nil {
		t.Errorf("Expected no error for empty task list, got: %v", err)
	}
}
