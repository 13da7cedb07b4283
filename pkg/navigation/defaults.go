package navigation

const (
	IconDashboard    = "layout-dashboard"
	IconRepositories = "folder-git-2"
	IconSecrets      = "shield-alert"
)

// DefaultEntries is the sidebar shipped with the dashboard.
func DefaultEntries() []Entry {
	return []Entry{
		{Label: "Dashboard", Icon: IconDashboard, Path: "/"},
		{Label: "Repositories", Icon: IconRepositories, Path: "/repositories"},
		{Label: "Secrets", Icon: IconSecrets, Path: "/secrets"},
	}
}

// Default returns a model built from DefaultEntries.
func Default() *Model {
	return MustModel(DefaultEntries()...)
}
