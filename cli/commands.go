package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tuannh982/adt/utils/collections"
)

type SetCmd struct {
	Left  []string `help:"Elements of the left set." sep:","`
	Right []string `help:"Elements of the right set." sep:","`
}

func (cmd *SetCmd) Run(g *Globals) error {
	left := collections.NewListSet(cmd.Left...)
	right := collections.NewListSet(cmd.Right...)
	union, err := left.Union(right)
	if err != nil {
		return err
	}
	intersection, err := left.Intersect(right)
	if err != nil {
		return err
	}
	leftOnly, err := left.Difference(right)
	if err != nil {
		return err
	}
	rightOnly, err := right.Difference(left)
	if err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "left: %s\n", left)
	fmt.Fprintf(g.Out, "right: %s\n", right)
	fmt.Fprintf(g.Out, "union: %s\n", union)
	fmt.Fprintf(g.Out, "intersect: %s\n", intersection)
	fmt.Fprintf(g.Out, "left - right: %s\n", leftOnly)
	fmt.Fprintf(g.Out, "right - left: %s\n", rightOnly)
	fmt.Fprintf(g.Out, "left subset of right: %t\n", left.Subset(right))
	fmt.Fprintf(g.Out, "right subset of left: %t\n", right.Subset(left))
	return nil
}

type QueueCmd struct {
	Elements []string `arg:"" optional:"" help:"Elements to enqueue."`
}

func (cmd *QueueCmd) Run(g *Globals) error {
	q := collections.NewQueue[string]()
	for _, e := range cmd.Elements {
		q.Enqueue(e)
	}
	fmt.Fprintf(g.Out, "queue: %s\n", q)
	for !q.Empty() {
		fmt.Fprintf(g.Out, "head %s, tail %s\n", q.Head(), q.Tail())
		fmt.Fprintf(g.Out, "dequeue: %s\n", q.Dequeue())
	}
	return nil
}

type ListCmd struct {
	Elements []string `arg:"" optional:"" help:"Elements appended to the list."`
	Insert   []string `help:"Insert value at a position, written value@position." placeholder:"VALUE@POS"`
	Get      []string `help:"Look up values."`
	Remove   []string `help:"Remove values."`
}

func parseInsert(s string) (string, int, error) {
	i := strings.LastIndex(s, "@")
	if i < 0 {
		return "", 0, fmt.Errorf("invalid insert %q: missing @position", s)
	}
	pos, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid insert %q: %w", s, err)
	}
	return s[:i], pos, nil
}

func (cmd *ListCmd) Run(g *Globals) error {
	l := collections.NewLinkedList[string]()
	for _, e := range cmd.Elements {
		_ = l.Insert(e)
	}
	for _, s := range cmd.Insert {
		v, pos, err := parseInsert(s)
		if err != nil {
			return err
		}
		if err := l.Insert(v, pos); err != nil {
			fmt.Fprintf(g.Out, "insert %s: %v\n", s, err)
		}
	}
	for _, s := range cmd.Get {
		v, err := l.Get(s)
		if err != nil {
			fmt.Fprintf(g.Out, "get %s: %v\n", s, err)
			continue
		}
		fmt.Fprintf(g.Out, "get %s: %s\n", s, v)
	}
	for _, s := range cmd.Remove {
		if err := l.Remove(s); err != nil {
			fmt.Fprintf(g.Out, "remove %s: %v\n", s, err)
		}
	}
	fmt.Fprintf(g.Out, "list: %s\n", l)
	return nil
}

type StackCmd struct {
	Elements []string `arg:"" optional:"" help:"Elements to push."`
}

func (cmd *StackCmd) Run(g *Globals) error {
	s := collections.NewStack[string]()
	for _, e := range cmd.Elements {
		s.Push(e)
	}
	fmt.Fprintf(g.Out, "stack: %s\n", s)
	for s.Size() > 0 {
		fmt.Fprintf(g.Out, "pop: %s\n", s.Pop())
	}
	return nil
}
