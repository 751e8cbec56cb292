package queue_test

import (
	"context"
	"fmt"

	"github.com/dshills/eventq/event"
	"github.com/dshills/eventq/event/category"
	"github.com/dshills/eventq/queue"
)

type documentSaved struct {
	Path string
}

func (documentSaved) EventCategory() category.Category { return "document.saved" }

func ExamplePump() {
	p := queue.NewPump()

	sub := event.SubscriberFunc(func(ctx context.Context, ev any) error {
		fmt.Println("saved:", ev.(documentSaved).Path)
		return nil
	})
	if err := p.Subscribe("document.saved", sub); err != nil {
		fmt.Println("subscribe:", err)
		return
	}

	_ = p.Enqueue(documentSaved{Path: "notes.txt"})
	_ = p.Enqueue(documentSaved{Path: "draft.txt"})

	// Nothing happens until the consumer drives the pump.
	p.HandleAll(context.Background())

	// Output:
	// saved: notes.txt
	// saved: draft.txt
}

func ExampleBackground() {
	b := queue.NewBackground()

	done := make(chan struct{})
	closedSub := event.SubscriberFunc(func(ctx context.Context, ev any) error {
		fmt.Println("queue closed")
		close(done)
		return nil
	})
	if err := b.Subscribe(event.CategoryQueueClosed, closedSub); err != nil {
		fmt.Println("subscribe:", err)
		return
	}

	if err := b.BeginClose(); err != nil {
		fmt.Println("close:", err)
		return
	}
	<-done
	_ = b.Join(context.Background())

	// Output:
	// queue closed
}
