package data

// AvatarConfigTemplate 角色模板。服务端只映射会用到的列。
type AvatarConfigTemplate struct {
	ID           int32    `tsv:"ID"`
	CodeName     string   `tsv:"CodeName"`
	Name         string   `tsv:"Name"`
	HitTypes     []int32  `tsv:"HitTypes"`
	ElementTypes []int32  `tsv:"ElementTypes"`
	Tags         []string `tsv:"Tags"`
	Gender       int32    `tsv:"Gender"`
	Camp         int32    `tsv:"Camp"`
	WeaponType   int32    `tsv:"WeaponType"`
	StarInitial  int32    `tsv:"StarInitial"`
	HP           int32    `tsv:"HP"`
	HPGrowth     int32    `tsv:"HPGrowth"`
	Armor        int32    `tsv:"Armor"`
	Shield       int32    `tsv:"Shield"`
	Attack       int32    `tsv:"Attack"`
	Defence      int32    `tsv:"Defence"`
	Crit         int32    `tsv:"Crit"`
	CritDamage   int32    `tsv:"CritDamage"`
	Weapon       int32    `tsv:"Weapon"`
}

// UnlockConfigTemplate 功能解锁模板。
type UnlockConfigTemplate struct {
	ID          int32  `tsv:"ID"`
	LockType    int32  `tsv:"LockType"`
	LockParam   string `tsv:"LockParam"`
	UnlockType  int32  `tsv:"UnlockType"`
	UnlockParam string `tsv:"UnlockParam"`
	MenuType    int32  `tsv:"MenuType"`
	Name        string `tsv:"Name"`
}

// MainCityObjectTemplate 主城交互物模板。
type MainCityObjectTemplate struct {
	TagID              int32     `tsv:"TagID"`
	NPCID              int32     `tsv:"NPCID"`
	CreatePosition     string    `tsv:"CreatePosition"`
	CreateType         int32     `tsv:"CreateType"`
	DefaultInteractIDs []int32   `tsv:"DefaultInteractIDs"`
	InteractName       string    `tsv:"InteractName"`
	InteractShape      int32     `tsv:"InteractShape"`
	InteractScale      []float64 `tsv:"InteractScale"`
	FocusInteractScale float64   `tsv:"FocusInteractScale"`
	IgnoreCollider     bool      `tsv:"IgnoreCollider"`
	SceneSoundID       int32     `tsv:"SceneSoundID"`
	ObjectIDs          []int32   `tsv:"ObjectIDs"`
	CreateInterval     int32     `tsv:"CreateInterval"`
	CreateDelay        int32     `tsv:"CreateDelay"`
	ActionState        int32     `tsv:"ActionState"`
}

// NPCTransformTemplate 主城 NPC 站位模板。
type NPCTransformTemplate struct {
	ID       string `tsv:"ID"`
	Section  int32  `tsv:"Section"`
	Position string `tsv:"Position"`
	Rotation string `tsv:"Rotation"`
}
