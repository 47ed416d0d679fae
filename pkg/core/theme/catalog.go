package theme

// Built-in themes. Light and Dark carry their own scheme; the others apply
// unconditionally unless re-tagged with WithScheme.
var (
	Light = register(Theme{
		Name:   "light",
		Scheme: SchemeLight,
		Vars: []Variable{
			{"--bg-0", "#fff"},
			{"--bg-1", "#e5e5e5"},
			{"--bg-2", "#e5e5e5"},
			{"--bg-3", "#e5e5e5"},
			{"--text-0", "#000"},
			{"--text-1", "#808080"},
			{"--text-2", "#808080"},
			{"--text-3", "#808080"},
		},
	})

	Dark = register(Theme{
		Name:   "dark",
		Scheme: SchemeDark,
		Vars: []Variable{
			{"--bg-0", "#101010"},
			{"--bg-1", "#404040"},
			{"--bg-2", "#404040"},
			{"--bg-3", "#404040"},
			{"--text-0", "#f0f0f0"},
			{"--text-1", "#dcdcdc"},
			{"--text-2", "#dcdcdc"},
			{"--text-3", "#dcdcdc"},
			{"--color-0", "#ffa116"},
			{"--color-1", "#5cb85c"},
			{"--color-2", "#f0ad4e"},
			{"--color-3", "#d9534f"},
		},
		Extra: "#L { fill: #fff }",
	})

	Ferrari = register(Theme{
		Name:   "ferrari",
		Scheme: "ferrari",
		Vars: []Variable{
			{"--bg-0", "#a6051a"},
			{"--bg-1", "#ed1c24"},
			{"--bg-2", "#ed1c24"},
			{"--bg-3", "#ed1c24"},
			{"--text-0", "#fff200"},
			{"--text-1", "#ffffff"},
			{"--text-2", "#ffffff"},
			{"--text-3", "#ffffff"},
			{"--color-0", "#fff200"},
			{"--color-1", "#009a4e"},
			{"--color-2", "#ffffff"},
			{"--color-3", "#111111"},
		},
		Extra: "#L { fill: #ffffff }",
	})

	Nord = register(Theme{
		Name:   "nord",
		Scheme: "nord",
		Vars: []Variable{
			{"--bg-0", "#2e3440"},
			{"--bg-1", "#434c5e"},
			{"--bg-2", "#3b4252"},
			{"--bg-3", "#3b4252"},
			{"--text-0", "#eceff4"},
			{"--text-1", "#d8dee9"},
			{"--text-2", "#d8dee9"},
			{"--text-3", "#d8dee9"},
			{"--color-0", "#88c0d0"},
			{"--color-1", "#a3be8c"},
			{"--color-2", "#ebcb8b"},
			{"--color-3", "#bf616a"},
		},
		Extra: "#L { fill: #eceff4 }",
	})

	Dracula = register(Theme{
		Name:   "dracula",
		Scheme: "dracula",
		Vars: []Variable{
			{"--bg-0", "#282a36"},
			{"--bg-1", "#44475a"},
			{"--bg-2", "#44475a"},
			{"--bg-3", "#44475a"},
			{"--text-0", "#f8f8f2"},
			{"--text-1", "#bd93f9"},
			{"--text-2", "#bd93f9"},
			{"--text-3", "#bd93f9"},
			{"--color-0", "#ff79c6"},
			{"--color-1", "#50fa7b"},
			{"--color-2", "#f1fa8c"},
			{"--color-3", "#ff5555"},
		},
		Extra: "#L { fill: #f8f8f2 }",
	})
)
