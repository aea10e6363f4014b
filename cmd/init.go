package cmd

var (
	configPath  string
	profilePath string
	showMetrics bool

	page    int
	title   string
	include []string
	exclude []string
	selects map[string]int

	showHeaders    bool
	chapterNumbers string
)

func initRootFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"specifies the path to your config file",
	)
	rootCmd.PersistentFlags().StringVarP(
		&profilePath,
		"profile",
		"p",
		"",
		"specifies the yaml site profile to use instead of the configured one",
	)
	rootCmd.PersistentFlags().BoolVar(
		&showMetrics,
		"metrics",
		false,
		"log fetch and extraction counters when the command finishes",
	)
}

func initCatalogFlags() {
	listCmd.Flags().IntVarP(
		&page,
		"page",
		"P",
		1,
		"specifies the catalog page",
	)

	searchCmd.Flags().IntVarP(
		&page,
		"page",
		"P",
		1,
		"specifies the result page",
	)
	chaptersCmd.Flags().StringVarP(
		&chapterNumbers,
		"chapters",
		"C",
		"",
		"only lists the given chapter numbers and ranges, e.g. 1-10,12.5",
	)
	pagesCmd.Flags().BoolVarP(
		&showHeaders,
		"headers",
		"H",
		false,
		"includes the request headers needed to download each image",
	)

	searchCmd.Flags().StringVarP(
		&title,
		"title",
		"t",
		"",
		"searches by title, all other filters are ignored when set",
	)
	searchCmd.Flags().StringSliceVarP(
		&include,
		"genre",
		"g",
		nil,
		"specifies genre ids that results must have",
	)
	searchCmd.Flags().StringSliceVarP(
		&exclude,
		"exclude",
		"x",
		nil,
		"specifies genre ids that results must not have",
	)
	searchCmd.Flags().StringToIntVarP(
		&selects,
		"filter",
		"f",
		nil,
		`sets a select filter by name to an option index, e.g. --filter "Tình trạng=2"`,
	)
}
