package commands

import (
	"flag"
	"fmt"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/config"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/profile"
)

func CreateProfilesCommand() *ProfilesCommand {
	return &ProfilesCommand{
		fs: flag.NewFlagSet("profiles", flag.ExitOnError),
	}
}

type ProfilesCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
}

func (g *ProfilesCommand) Name() string {
	return g.fs.Name()
}

func (g *ProfilesCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	return nil
}

func (g *ProfilesCommand) Run() error {
	dir := g.cfg.GetAbsProfileDir()

	infos, err := profile.ListProfiles(dir)
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Printf("No profiles found in %s\n", dir)
		return nil
	}

	fmt.Printf("Profiles in %s:\n\n", dir)
	for _, info := range infos {
		if info.Error != "" {
			fmt.Printf("  %s - BROKEN: %s\n", info.File, info.Error)
			continue
		}

		fmt.Printf("  %s [%s]\n", info.Name, info.Category)
		if info.Description != "" {
			fmt.Printf("      %s\n", info.Description)
		}
		fmt.Printf("      blocklists: %d, file: %s\n", info.Blocklists, info.File)
		for _, warning := range info.Warnings {
			fmt.Printf("      warning: %s\n", warning)
		}
		fmt.Println()
	}

	return nil
}
