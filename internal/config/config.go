// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Геометрия арены
	ArenaCenterX    = ScreenWidth / 2.0
	ArenaCenterY    = ScreenHeight / 2.0
	ArenaRadius     = 400.0
	InnerRingFactor = 0.7 // внутренний радиус кольца спавна = 70% от внешнего

	// Поведение юнитов
	UnitRadius           = 12.0
	ControlRadius        = 80.0 // радиус контрольной зоны вокруг центра
	RallyJitter          = 10.0 // разброс точки сбора по каждой оси
	TargetSearchInterval = 0.5  // секунд между поисками цели
	CorpseGraceDelay     = 1.0  // сколько секунд труп остаётся на поле
	ArriveEpsilon        = 1.0  // расстояние, на котором цель движения считается достигнутой

	// Разделение (мягкое расталкивание соседей)
	MinSeparation    = 6.0
	SeparationWeight = 0.5

	// Разброс урона: бросок в диапазоне [min, max] от базового урона
	DamageRollMin = 0.8
	DamageRollMax = 1.2

	// Автоспавн для секторов без игрока
	AutoSpawnInterval = 2.5

	// UI
	SpawnButtonWidth   = 118.0
	SpawnButtonHeight  = 34.0
	SpawnButtonSpacing = 8.0
	SpawnButtonMarginX = 16.0
	SpawnButtonMarginY = 16.0
	HealthBarHeight    = 4.0
	HealthBarOffsetY   = 8.0

	FontPath = "assets/fonts/arial.ttf"
	FontSize = 14
)

// Пути к таблицам определений
const (
	UnitDefsPath    = "assets/data/units.json"
	FactionDefsPath = "assets/data/factions.json"
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	RingColor        = color.RGBA{70, 100, 120, 220}
	ControlZoneColor = color.RGBA{194, 178, 128, 90}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	HealthBarBack    = color.RGBA{40, 40, 50, 255}
	HealthBarFill    = color.RGBA{50, 205, 50, 255}
	CorpseColor      = color.RGBA{90, 90, 100, 160}
	UnitStrokeColor  = color.RGBA{255, 255, 255, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{100, 160, 210, 220}
)
