package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimtriage/internal/exitcode"
	"github.com/gyeh/claimtriage/internal/logging"
	"github.com/gyeh/claimtriage/internal/normalize"
	"github.com/gyeh/claimtriage/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and maintain the persisted reassignment rule store",
}

var (
	ruleKey   string
	ruleEdits string
	ruleNotes string
)

func init() {
	list := &cobra.Command{
		Use:   "list",
		Short: "Print every stored rule",
		RunE:  runRulesList,
	}

	set := &cobra.Command{
		Use:   "set <team>",
		Short: "Store a rule mapping a group key to a team",
		Args:  cobra.ExactArgs(1),
		RunE:  runRulesSet,
	}
	addKeyFlags(set)

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Remove the rule for one group key",
		RunE:  runRulesClear,
	}
	addKeyFlags(clear)

	clearAll := &cobra.Command{
		Use:   "clear-all",
		Short: "Remove every stored rule",
		RunE:  runRulesClearAll,
	}

	imp := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge rules from an exported JSON file, imported entries winning",
		Args:  cobra.ExactArgs(1),
		RunE:  runRulesImport,
	}

	exp := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the rule store as JSON to a file or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRulesExport,
	}

	count := &cobra.Command{
		Use:   "count",
		Short: "Print the number of stored rules",
		RunE:  runRulesCount,
	}

	rulesCmd.AddCommand(list, set, clear, clearAll, imp, exp, count)
	rootCmd.AddCommand(rulesCmd)
}

func addKeyFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&ruleKey, "key", "", "Group key (UPPERCASED \"edits|notes\")")
	f.StringVar(&ruleEdits, "edits", "", "Raw edits text, normalized into the key")
	f.StringVar(&ruleNotes, "notes", "", "Raw notes text, normalized into the key")
}

// resolveKey turns the --key / --edits / --notes flags into a group key.
func resolveKey() string {
	if ruleKey != "" {
		return ruleKey
	}
	if ruleEdits == "" && ruleNotes == "" {
		fmt.Fprintln(os.Stderr, "either --key or --edits/--notes is required")
		os.Exit(exitcode.UsageError)
	}
	return normalize.Key(ruleEdits, ruleNotes)
}

func openStore() *rules.Store {
	return rules.NewStore(rules.NewFileStorage(cfg.RulesPath))
}

func runRulesList(cmd *cobra.Command, args []string) error {
	store := openStore()
	all := store.All()
	for _, k := range store.Keys() {
		fmt.Printf("%-34s %s\n", all[k], k)
	}
	fmt.Printf("%d rule(s)\n", store.Count())
	return nil
}

func runRulesSet(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)
	team, ok := parseTeamArg(args[0])
	if !ok {
		log.Error().Str("team", args[0]).Msg("unknown team")
		os.Exit(exitcode.UsageError)
	}

	store := openStore()
	key := resolveKey()
	var err error
	if team.Explicit() {
		err = store.Set(key, team)
	} else {
		err = store.Clear(key)
	}
	if err != nil {
		log.Error().Err(err).Msg("rule store write failed")
		os.Exit(exitcode.RuleError)
	}
	fmt.Printf("%s -> %s (%d rule(s) stored)\n", key, team, store.Count())
	return nil
}

func runRulesClear(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)
	store := openStore()
	key := resolveKey()
	if err := store.Clear(key); err != nil {
		log.Error().Err(err).Msg("rule store write failed")
		os.Exit(exitcode.RuleError)
	}
	fmt.Printf("cleared %s (%d rule(s) stored)\n", key, store.Count())
	return nil
}

func runRulesClearAll(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)
	store := openStore()
	n := store.Count()
	if err := store.ClearAll(); err != nil {
		log.Error().Err(err).Msg("rule store write failed")
		os.Exit(exitcode.RuleError)
	}
	fmt.Printf("cleared %d rule(s)\n", n)
	return nil
}

func runRulesImport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)
	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Error().Err(err).Msg("read import file failed")
		os.Exit(exitcode.UsageError)
	}

	imported, err := rules.Parse(data)
	if err != nil {
		log.Error().Err(err).Msg("import file is not a valid rule export")
		os.Exit(exitcode.RuleError)
	}

	store := openStore()
	n, err := store.Merge(imported)
	if err != nil {
		log.Error().Err(err).Msg("rule store write failed")
		os.Exit(exitcode.RuleError)
	}
	fmt.Printf("imported %d rule(s); %d now stored\n", n, store.Count())
	return nil
}

func runRulesExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)
	store := openStore()
	data, err := store.Serialize()
	if err != nil {
		log.Error().Err(err).Msg("serialize failed")
		os.Exit(exitcode.RuleError)
	}

	if len(args) == 0 {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		log.Error().Err(err).Msg("write export file failed")
		os.Exit(exitcode.RuleError)
	}
	fmt.Printf("exported %d rule(s) to %s\n", store.Count(), args[0])
	return nil
}

func runRulesCount(cmd *cobra.Command, args []string) error {
	fmt.Println(openStore().Count())
	return nil
}
