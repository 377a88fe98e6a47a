package main

import (
	"context"
	"fmt"
	"strings"

	"scrapesage"
)

// Fixed dispatcher messages. Tests assert on these, so wording changes are
// contract changes.
const (
	msgUnknownCommand  = "Command not found: %q. Type 'help' to list available commands."
	msgNoPrioritySites = "Error: no priority sites configured. Use 'add-site <url>' before scraping."
	msgNoQuery         = "Error: no query provided."
	msgGoodbye         = "Goodbye!"

	// ANSI clear screen + cursor home.
	clearScreen = "\033[2J\033[H"
)

// Dispatcher maps one line of user input onto a session state mutation, a
// scrape, or a no-op, and produces render-ready output. One dispatch runs
// to completion (including retry sleeps) before the next line is read, so
// State needs no locking.
type Dispatcher struct {
	State   *scrapesage.SessionState
	Store   scrapesage.StateStore
	Scraper scrapesage.Scraper
}

// Dispatch interprets a single input line. It returns the output to render
// and whether the interpreter should exit. The verb is case-insensitive;
// arguments are taken verbatim.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}

	verb, rest, _ := strings.Cut(trimmed, " ")
	verb = strings.ToLower(verb)
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	switch verb {
	case "help":
		return HelpText(), false
	case "exit":
		return msgGoodbye, true
	case "clear":
		return clearScreen, false

	case "add-site":
		return d.addTo(ctx, args, priorityList), false
	case "list-sites":
		return renderSiteList(d.State.Sites, priorityList), false
	case "remove-site":
		return d.removeFrom(ctx, args, priorityList), false
	case "clear-sites":
		return d.clearList(ctx, priorityList), false

	case "add-exclude":
		return d.addTo(ctx, args, excludedList), false
	case "list-excludes":
		return renderSiteList(d.State.ExcludedSites, excludedList), false
	case "remove-exclude":
		return d.removeFrom(ctx, args, excludedList), false
	case "clear-excludes":
		return d.clearList(ctx, excludedList), false

	case "scrape":
		if rest == "" {
			return "usage: scrape <query>", false
		}
		return d.scrape(ctx, rest), false
	case "scrape-morning":
		return d.scrape(ctx, d.State.MorningQuery), false
	case "set-morning-query":
		if rest == "" {
			return "usage: set-morning-query <query>", false
		}
		d.State.SetMorningQuery(rest)
		d.persist(ctx)
		return fmt.Sprintf("Morning query set to: %q", rest), false

	default:
		return fmt.Sprintf(msgUnknownCommand, verb), false
	}
}

// siteList selects which of the two site lists a command operates on.
type siteList int

const (
	priorityList siteList = iota
	excludedList
)

func (l siteList) name() string {
	if l == excludedList {
		return "excluded"
	}
	return "priority"
}

func (d *Dispatcher) addTo(ctx context.Context, args []string, list siteList) string {
	if len(args) == 0 {
		if list == excludedList {
			return "usage: add-exclude <url> [url...]"
		}
		return "usage: add-site <url> [url...]"
	}

	var added, duplicates []string
	if list == excludedList {
		added, duplicates = d.State.AddExcludes(args)
	} else {
		added, duplicates = d.State.AddSites(args)
	}
	if len(added) > 0 {
		d.persist(ctx)
	}

	var b strings.Builder
	if len(added) > 0 {
		fmt.Fprintf(&b, "Added to %s list: %s", list.name(), strings.Join(added, ", "))
	}
	if len(duplicates) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Already present: %s", strings.Join(duplicates, ", "))
	}
	return b.String()
}

func (d *Dispatcher) removeFrom(ctx context.Context, args []string, list siteList) string {
	if len(args) != 1 {
		if list == excludedList {
			return "usage: remove-exclude <url>"
		}
		return "usage: remove-site <url>"
	}
	site := args[0]

	var found bool
	if list == excludedList {
		found = d.State.RemoveExclude(site)
	} else {
		found = d.State.RemoveSite(site)
	}
	if !found {
		return fmt.Sprintf("%s is not in the %s list.", site, list.name())
	}

	d.persist(ctx)
	return fmt.Sprintf("Removed %s from the %s list.", site, list.name())
}

func (d *Dispatcher) clearList(ctx context.Context, list siteList) string {
	var had bool
	if list == excludedList {
		had = d.State.ClearExcludes()
	} else {
		had = d.State.ClearSites()
	}
	if !had {
		return fmt.Sprintf("The %s list is already empty.", list.name())
	}

	d.persist(ctx)
	return fmt.Sprintf("Cleared the %s list.", list.name())
}

// scrape runs the orchestrator for both scrape and scrape-morning. The
// priority-site check happens here so an unscoped query never reaches the
// backend.
func (d *Dispatcher) scrape(ctx context.Context, query string) string {
	if len(d.State.Sites) == 0 {
		return msgNoPrioritySites
	}
	if strings.TrimSpace(query) == "" {
		return msgNoQuery
	}

	result, err := d.Scraper.Scrape(ctx, scrapesage.ScrapeRequest{
		Query:        query,
		IncludeSites: d.State.Sites,
		ExcludeSites: d.State.ExcludedSites,
	})
	if err != nil {
		return "Error: " + scrapesage.ErrorMessage(err)
	}

	return RenderResult(result)
}

// persist saves the session state after a mutation. Save failures are
// swallowed (the logging store wrapper records them); the in-memory state
// remains authoritative for the rest of the session.
func (d *Dispatcher) persist(ctx context.Context) {
	_ = d.Store.Save(ctx, d.State)
}
