package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olimci/rayforge/pkg/kvconf"
	"github.com/olimci/rayforge/pkg/project"
	"github.com/urfave/cli/v3"
)

// ConfigShow prints the entries of a .rpc file with their inferred
// classification.
func ConfigShow(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: rayforge config show <file>")
	}
	path := cmd.Args().First()

	printer := newEventPrinter(eventOutputRich, os.Stdout)
	_, doc, err := project.LoadConfigDoc(path, printer)
	if err != nil {
		return err
	}

	for _, entry := range doc.Entries {
		value := strconv.Itoa(entry.Value)
		if entry.IsText {
			value = `"` + entry.Text + `"`
		}

		kind := "unknown"
		if class, err := project.Classify(entry.Key, entry.IsText); err == nil {
			kind = class.Category.String() + "/" + class.Type.String()
		}

		fmt.Printf("%-36s %-28s %-18s %s\n", entry.Key, value, kind, entry.Desc)
	}

	fmt.Printf("\n%d entries\n", doc.Len())
	return nil
}

// ConfigSet updates one key in a .rpc file, preserving entry order and
// descriptions.
func ConfigSet(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 3 {
		return fmt.Errorf("usage: rayforge config set <file> <key> <value>")
	}
	path := cmd.Args().Get(0)
	key := strings.ToUpper(strings.TrimSpace(cmd.Args().Get(1)))
	raw := cmd.Args().Get(2)

	printer := newEventPrinter(eventOutputRich, os.Stdout)
	_, doc, err := project.LoadConfigDoc(path, printer)
	if err != nil {
		return err
	}

	if err := setEntry(doc, key, raw); err != nil {
		return err
	}

	if err := doc.Save(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	fmt.Printf("%s set in %s\n", key, path)
	return nil
}

// setEntry writes raw into doc under key, choosing the integer form when
// the value parses as one and the key's classification expects it.
func setEntry(doc *kvconf.Doc, key, raw string) error {
	desc := project.Describe(key)

	if quoted := strings.TrimSpace(raw); len(quoted) >= 2 &&
		strings.HasPrefix(quoted, `"`) && strings.HasSuffix(quoted, `"`) {
		return doc.SetText(key, quoted[1:len(quoted)-1], desc)
	}

	if value, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		if class, cerr := project.Classify(key, false); cerr == nil {
			switch class.Type {
			case project.TypeBool, project.TypeInt:
				return doc.SetValue(key, value, desc)
			}
		} else {
			return doc.SetValue(key, value, desc)
		}
	}

	return doc.SetText(key, raw, desc)
}
