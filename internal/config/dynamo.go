package config

const (
	envDynamoGamesTable       = "DYNAMO_GAMES_TABLE"
	envDynamoCollectionsTable = "DYNAMO_COLLECTIONS_TABLE"
	envDynamoRegion           = "DYNAMO_REGION"

	defaultGamesTable       = "MobileGames"
	defaultCollectionsTable = "DeviceCollection"
)

// DynamoConfig controls the direct table access provider.
type DynamoConfig struct {
	GamesTable       string
	CollectionsTable string
	Region           string
}

func loadDynamo() DynamoConfig {
	return DynamoConfig{
		GamesTable:       envOrDefault(envDynamoGamesTable, defaultGamesTable),
		CollectionsTable: envOrDefault(envDynamoCollectionsTable, defaultCollectionsTable),
		Region:           envOrDefault(envDynamoRegion, ""),
	}
}
