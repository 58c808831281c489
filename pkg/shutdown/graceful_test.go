package shutdown

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStop_RunsAllInOrder(t *testing.T) {
	var order []string
	record := func(name string, err error) Stoppable {
		return Func(func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("%s: context has no deadline", name)
			}
			order = append(order, name)
			return err
		})
	}

	err := Stop(context.Background(), time.Second,
		record("http", errors.New("listener busy")),
		nil,
		record("neo4j", nil),
	)
	if err == nil || !strings.Contains(err.Error(), "listener busy") {
		t.Fatalf("err = %v", err)
	}
	if strings.Join(order, ",") != "http,neo4j" {
		t.Errorf("order = %v", order)
	}
}

func TestStop_NoStoppables(t *testing.T) {
	if err := Stop(context.Background(), time.Second); err != nil {
		t.Errorf("err = %v", err)
	}
}
