package main

import (
	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Validate a route manifest and list its routes",
		Long: `Load a route manifest, compile every pattern, and print the
resulting route table in registration order. A pattern that fails to
compile fails the whole command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := buildRouter(manifestPath)
			if err != nil {
				return err
			}

			routes := r.Routes()
			success("%d route(s) compiled from %s", len(routes), manifestPath)
			for i, rt := range routes {
				name := rt.Name
				if name == "" {
					name = "-"
				}
				pathSpec := rt.Path
				if rt.Pattern != nil {
					pathSpec = rt.Pattern.String()
				}
				external := ""
				if rt.External.IsExternal(nil) {
					external = "  [external]"
				}
				info("%2d  %-20s %s%s", i, name, pathSpec, external)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "routes.yaml", "Route manifest file (JSON or YAML)")

	return cmd
}

func matchCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "match <path>",
		Short: "Resolve a path against a route manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := buildRouter(manifestPath)
			if err != nil {
				return err
			}

			m := r.Match(args[0])
			if m == nil {
				info("no match for %s", args[0])
				return nil
			}

			name := m.Route.Name
			if name == "" {
				name = "-"
			}
			success("matched route %s", name)
			info("pathname:   %s", m.Pathname)
			if m.Search != "" {
				info("search:     %s", m.Search)
			}
			if m.Hash != "" {
				info("hash:       %s", m.Hash)
			}
			if m.HashSearch != "" {
				info("hashSearch: %s", m.HashSearch)
			}
			for k, v := range m.State {
				info("state.%s = %s", k, v)
			}
			if m.Route.External.IsExternal(m) {
				info("externality: external")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "routes.yaml", "Route manifest file (JSON or YAML)")

	return cmd
}
