package presenter

type State int

const (
	StateIdle State = iota
	StateFetchingInitial
	StateFetchingPage
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetchingInitial:
		return "fetching-initial"
	case StateFetchingPage:
		return "fetching-page"
	case StateRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}
