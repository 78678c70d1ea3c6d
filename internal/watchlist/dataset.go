package watchlist

import "complyd/internal/domain"

// DefaultProviders returns static providers for all seven lists, seeded with
// a development dataset. Real deployments replace these with feed-backed
// providers per list.
func DefaultProviders() []Lookup {
	return []Lookup{
		NewStaticProvider(domain.WatchlistEntityList, []Entry{
			{EntityName: "Dragon Semiconductor Corp", Country: "CN", Program: "entity list supplement 4"},
			{EntityName: "Polaris Microelectronics", Country: "CN", Aliases: []string{"Polaris Micro"}},
		}),
		NewStaticProvider(domain.WatchlistSDN, []Entry{
			{EntityName: "Vostok Trading House", Country: "RU", Program: "SDN"},
			{EntityName: "Caspian Logistics LLC", Country: "RU", Aliases: []string{"Caspian Log"}},
		}),
		NewStaticProvider(domain.WatchlistUnverified, []Entry{
			{EntityName: "Harbor Components Ltd", Country: "HK"},
		}),
		NewStaticProvider(domain.WatchlistMilitaryEndUser, []Entry{
			{EntityName: "Northern Precision Works", Country: "CN", Program: "MEU"},
		}),
		NewStaticProvider(domain.WatchlistEUConsolidated, []Entry{
			{EntityName: "Baltic Industrial Group", Country: "BY"},
		}),
		NewStaticProvider(domain.WatchlistUNSanctions, []Entry{
			{EntityName: "Koryo Machinery Trading", Country: "KP"},
		}),
		NewStaticProvider(domain.WatchlistDeniedPersons, []Entry{
			{EntityName: "Meridian Export Services", Country: "IR", Aliases: []string{"Meridian Exports"}},
		}),
	}
}
