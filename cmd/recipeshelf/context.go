package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/familykitchen/recipeshelf"
	"github.com/familykitchen/recipeshelf/store"
)

// commandContext carries the shared flags and lazily built collaborators
// every subcommand needs.
type commandContext struct {
	baseURLFlag *string
	yesFlag     *bool

	client *recipeshelf.Client
}

func newCommandContext(baseURLFlag *string, yesFlag *bool) *commandContext {
	return &commandContext{baseURLFlag: baseURLFlag, yesFlag: yesFlag}
}

// ensureClient builds the sync client once: env config first, the
// --base-url flag wins when set.
func (c *commandContext) ensureClient() (*recipeshelf.Client, error) {
	if c.client != nil {
		return c.client, nil
	}
	if *c.baseURLFlag != "" {
		c.client = recipeshelf.New(*c.baseURLFlag)
		return c.client, nil
	}
	client, err := recipeshelf.NewFromEnv()
	if err != nil {
		return nil, err
	}
	c.client = client
	return c.client, nil
}

// loadedStore builds a store over the client with the interactive
// confirmation hook and loads the collection.
func (c *commandContext) loadedStore(ctx context.Context) (*store.Store, error) {
	client, err := c.ensureClient()
	if err != nil {
		return nil, err
	}
	s := store.New(client, store.WithConfirm(c.confirm))
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// confirm prompts on stderr and reads one line from stdin. --yes
// approves everything without prompting.
func (c *commandContext) confirm(prompt string) bool {
	if *c.yesFlag {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
