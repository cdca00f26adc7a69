// internal/event/types.go
package event

const (
	UnitSpawned EventType = "UnitSpawned" // Юнит появился на арене
	UnitKilled  EventType = "UnitKilled"  // Юнит убит
	UnitRemoved EventType = "UnitRemoved" // Труп убран с арены
	BattleEnded EventType = "BattleEnded" // Осталась одна фракция
)
