package manager

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/hollowzero/app/gameserver/internal/data"
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/model"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// 事件图动作 id 的千位区分触发阶段：1xxx 为 OnStart，2xxx 为 OnEnd。
const (
	defaultHollowLevel = 1
	chessboardCols     = 11

	battleTemplateChangeLevel = 1000107
	battleIDChangeLevel       = 10101002
	battleIDNormal            = 10101001
)

// MoveOutcome 一次走格的下发内容。SyncEvent 仅在触发新事件时非空。
type MoveOutcome struct {
	SyncEvent  *protocol.PtcSyncHollowEventInfoArg
	GridUpdate *protocol.PtcHollowGridArg
}

// RunOutcome 事件图推进结果。TriggerBattleID 为 0 表示本次未触发战斗。
type RunOutcome struct {
	SyncEvent       *protocol.PtcSyncHollowEventInfoArg
	GridUpdate      *protocol.PtcHollowGridArg
	TriggerBattleID int32
	HollowFinished  bool
}

// HollowGridManager 空洞棋盘：格子状态、事件执行进度与客户端增量下发。
type HollowGridManager struct {
	props  *model.PropertyManager
	tables *data.Tables

	mu      sync.Mutex
	gridMap *protocol.HollowGridMapProtocolInfo
	events  map[uint64]protocol.EventInfo
}

func NewHollowGridManager(props *model.PropertyManager, tables *data.Tables) *HollowGridManager {
	return &HollowGridManager{
		props:  props,
		tables: tables,
		events: make(map[uint64]protocol.EventInfo),
	}
}

// InitDefaultMap 铺设首个空洞章节的固定棋盘。
func (m *HollowGridManager) InitDefaultMap() {
	grids := property.NewMap[uint16, protocol.HollowGridProtocolInfo]()
	for _, g := range []struct {
		index      uint16
		flag       int32
		linkTo     int8
		templateID int32
		eventType  protocol.HollowEventType
	}{
		{5, 2848, 6, 1000, protocol.HollowEventTypeDialogPositive},
		{6, 2848, 12, 1000, protocol.HollowEventTypeDialogPositive},
		{7, 2872, 10, 1017, protocol.HollowEventTypeDialogPositive},
		{16, 2848, 3, 1000105, protocol.HollowEventTypeDialog},
		{18, 2848, 3, 1000, protocol.HollowEventTypeDialogPositive},
		{22, 2686, 4, 1000101, protocol.HollowEventTypeBegin},
		{23, 35434, 12, 1000109, protocol.HollowEventTypeDialog},
		{24, 2658, 12, 1000, protocol.HollowEventTypeDialogPositive},
		{25, 2682, 10, 1000102, protocol.HollowEventTypeDialog},
		{27, 2848, 3, 1000104, protocol.HollowEventTypeDialog},
		{29, 2848, 5, 1000, protocol.HollowEventTypeDialogPositive},
		{30, 2848, 12, 1000, protocol.HollowEventTypeDialogPositive},
		{31, 2848, 12, 1000106, protocol.HollowEventTypeDialog},
		{32, 2872, 8, 1000107, protocol.HollowEventTypeChangeLevelInteract},
		{36, 2848, 3, 1000, protocol.HollowEventTypeDialogPositive},
		{38, 2848, 3, 1000, protocol.HollowEventTypeDialogPositive},
		{47, 2872, 5, 1000103, protocol.HollowEventTypeBattleNormal},
		{48, 2848, 12, 1000, protocol.HollowEventTypeDialogPositive},
		{49, 2872, 9, 1018, protocol.HollowEventTypeDialogPositive},
	} {
		grids.Insert(g.index, makeGrid(g.flag, g.linkTo, g.templateID, g.eventType))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.gridMap = &protocol.HollowGridMapProtocolInfo{
		Row:          5,
		Col:          chessboardCols,
		StartGrid:    22,
		Grids:        grids,
		ChessboardID: 1000101,
	}
	m.events = make(map[uint64]protocol.EventInfo)
}

func (m *HollowGridManager) CurPosition() uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gridMap.StartGrid
}

func (m *HollowGridManager) CurEventTemplateID() (int32, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	grid, ok := m.gridMap.Grids.Get(m.gridMap.StartGrid)
	if !ok {
		return 0, false
	}
	return grid.Grid.EventGraphInfo.HollowEventTemplateID, true
}

// MoveTo 把玩家移动到目标格，首次踏入时创建并下发待执行事件。
func (m *HollowGridManager) MoveTo(playerUid uint64, dest uint16, sceneUid uint64) (model.OpResult[MoveOutcome], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gridMap.StartGrid = dest
	changes := m.updatePositionToScene(sceneUid, dest)

	grid, ok := m.gridMap.Grids.Get(dest)
	if !ok {
		return model.OpResult[MoveOutcome]{}, errors.Newf("hollow grid %d doesn't exist", dest)
	}

	var outcome MoveOutcome
	if _, exists := m.events[uint64(dest)]; !exists {
		event := newWaitingEvent(1001, []int32{1001})
		m.events[uint64(dest)] = event

		outcome.SyncEvent = &protocol.PtcSyncHollowEventInfoArg{
			EventGraphUid:         uint64(dest),
			HollowEventTemplateID: grid.Grid.EventGraphInfo.HollowEventTemplateID,
			EventGraphID:          grid.Grid.EventGraphInfo.HollowEventTemplateID,
			UpdatedEvent:          event,
			Specials:              property.NewMap[string, int32](),
		}
	}

	if !grid.Grid.EventGraphInfo.Finished {
		grid.Grid.Flag |= int32(protocol.PackGridFlags(protocol.GridFlagTravelled, protocol.GridFlagShowEventID))
		grid.Grid.Flag &^= int32(protocol.PackGridFlags(
			protocol.GridFlagGuide, protocol.GridFlagCanTriggerEvent, protocol.GridFlagShowEventType))
		grid.Grid.EventGraphInfo.Finished = true
		grid.Grid.EventGraphInfo.FiredCount = 2
		m.gridMap.Grids.Insert(dest, grid)
	}

	outcome.GridUpdate = &protocol.PtcHollowGridArg{
		PlayerUid:   playerUid,
		IsPartial:   true,
		SceneUid:    sceneUid,
		HollowLevel: defaultHollowLevel,
		Grids:       map[uint16]protocol.HollowGridProtocolInfo{dest: grid},
	}

	return model.WithChanges(outcome, changes), nil
}

// BattleFinished 战斗结束后把当前格事件推进到 OnEnd 段，
// 并根据事件图判断本层空洞是否就此结束。
func (m *HollowGridManager) BattleFinished() (*protocol.PtcSyncHollowEventInfoArg, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	grid, ok := m.gridMap.Grids.Get(m.gridMap.StartGrid)
	if !ok {
		return nil, false, errors.Newf("hollow grid %d doesn't exist", m.gridMap.StartGrid)
	}
	templateID := grid.Grid.EventGraphInfo.HollowEventTemplateID

	graph, ok := m.tables.GetEventGraph(templateID)
	if !ok {
		return nil, false, errors.Newf("event graph %d is missing", templateID)
	}

	hollowFinished := false
	if onEnd, ok := graph.Events[data.EventTypeOnEnd]; ok && len(onEnd.Actions) > 0 {
		_, hollowFinished = onEnd.Actions[0].(data.ActionFinishHollow)
	}

	event := newWaitingEvent(2001, []int32{1001, 1002, 2001})
	m.events[uint64(m.gridMap.StartGrid)] = event

	return &protocol.PtcSyncHollowEventInfoArg{
		EventGraphUid:         uint64(m.gridMap.StartGrid),
		HollowEventTemplateID: templateID,
		EventGraphID:          templateID,
		UpdatedEvent:          event,
		Specials:              property.NewMap[string, int32](),
	}, hollowFinished, nil
}

// RunEventGraph 按客户端上报的动作路径执行事件图，
// 处理棋盘解锁、战斗触发与空洞结束三类动作。
func (m *HollowGridManager) RunEventGraph(playerUid, sceneUid, eventGraphUid uint64, movePath []int32) (RunOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info, ok := m.gridMap.Grids.Get(uint16(eventGraphUid))
	if !ok {
		return RunOutcome{}, errors.Newf("hollow grid %d doesn't exist", eventGraphUid)
	}
	templateID := info.Grid.EventGraphInfo.HollowEventTemplateID

	graph, ok := m.tables.GetEventGraph(templateID)
	if !ok {
		return RunOutcome{}, errors.Newf("event graph %d is missing", templateID)
	}

	outcome := RunOutcome{
		GridUpdate: &protocol.PtcHollowGridArg{
			PlayerUid:   playerUid,
			IsPartial:   true,
			SceneUid:    sceneUid,
			HollowLevel: defaultHollowLevel,
			Grids:       make(map[uint16]protocol.HollowGridProtocolInfo),
		},
	}

	var lastExec data.ConfigAction
	for _, id := range movePath {
		actions := graph.Events[actionPhase(id)].Actions
		index := id%1000 - 1
		if index < 0 || int(index) >= len(actions) {
			continue
		}
		lastExec = actions[index]

		switch action := lastExec.(type) {
		case data.ActionSetMapState:
			pos := uint16(action.Y.Constant*chessboardCols + action.X.Constant)
			grid, ok := m.gridMap.Grids.Get(pos)
			if !ok {
				continue
			}
			grid.Grid.Flag |= int32(protocol.PackGridFlags(
				protocol.GridFlagVisible, protocol.GridFlagCanMove, protocol.GridFlagShowEventType))
			m.gridMap.Grids.Insert(pos, grid)
			outcome.GridUpdate.Grids[pos] = grid
		case data.ActionTriggerBattle:
			if templateID == battleTemplateChangeLevel {
				outcome.TriggerBattleID = battleIDChangeLevel
			} else {
				outcome.TriggerBattleID = battleIDNormal
			}
		case data.ActionFinishHollow:
			outcome.HollowFinished = true
		}
	}

	lastClientAction := movePath[len(movePath)-1]
	actions := graph.Events[actionPhase(lastClientAction)].Actions

	state := protocol.EventStateWaitingClient
	switch {
	case lastClientAction == -1:
		state = protocol.EventStateFinished
	case int(lastClientAction%1000) >= len(actions):
		movePath = append(movePath, -1)
		state = protocol.EventStateFinished
	default:
		if _, empty := lastExec.(data.ActionEmpty); !empty {
			movePath = append(movePath, lastClientAction+1)
		}
	}

	var event protocol.EventInfo
	if _, battle := lastExec.(data.ActionTriggerBattle); battle {
		event = newEventInfo(0, 0, []int32{}, protocol.EventStateIniting, protocol.EventStateIniting)
	} else {
		event = newEventInfo(1000, movePath[len(movePath)-1], movePath, state, protocol.EventStateRunning)
	}
	m.events[eventGraphUid] = event

	outcome.SyncEvent = &protocol.PtcSyncHollowEventInfoArg{
		EventGraphUid:         eventGraphUid,
		HollowEventTemplateID: templateID,
		EventGraphID:          templateID,
		UpdatedEvent:          event,
		Specials:              property.NewMap[string, int32](),
	}
	return outcome, nil
}

// SyncHollowMaps 全量下发当前棋盘。
func (m *HollowGridManager) SyncHollowMaps(playerUid, sceneUid uint64) *protocol.PtcSyncHollowGridMapsArg {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &protocol.PtcSyncHollowGridMapsArg{
		PlayerUid:   playerUid,
		SceneUid:    sceneUid,
		HollowLevel: defaultHollowLevel,
		MainMap:     *m.gridMap,
		TimePeriod:  protocol.TimePeriodTypeRandom,
		Weather:     protocol.WeatherTypeRandom,
	}
}

func (m *HollowGridManager) updatePositionToScene(sceneUid uint64, pos uint16) *protocol.PlayerInfo {
	var changes *protocol.PlayerInfo
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		hollow, ok := mapGetHollow(p, sceneUid)
		if !ok {
			return
		}

		section, ok := hollow.SectionsInfo.Get(1)
		if ok {
			section.PrevGridIndex = section.CurGridIndex
			section.PosBeforeMove = section.CurGridIndex
			section.CurGridIndex = pos
			hollow.SectionsInfo.Insert(1, section)
		}
		hollow.HollowEventGraphUid = uint64(pos)

		changes = &protocol.PlayerInfo{
			DungeonCollection: &protocol.DungeonCollection{
				Scenes: property.MapModify(
					[]property.Pair[uint64, protocol.SceneInfo]{{Key: sceneUid, Value: hollow}}, nil),
			},
		}
	})
	return changes
}

func makeGrid(flag int32, linkTo int8, templateID int32, eventType protocol.HollowEventType) protocol.HollowGridProtocolInfo {
	return protocol.HollowGridProtocolInfo{
		Grid: protocol.HollowGridInfo{
			Flag:   flag,
			LinkTo: linkTo,
			EventGraphInfo: protocol.HollowEventGraphInfo{
				EventsInfo:            property.NewMap[int32, protocol.EventInfo](),
				Specials:              property.NewMap[string, uint64](),
				ListSpecials:          property.NewMap[string, []uint64](),
				HollowEventTemplateID: templateID,
			},
			NodeState:   protocol.NodeStateAll,
			NodeVisible: protocol.NodeVisibleAll,
		},
		EventType: eventType,
	}
}

func actionPhase(actionID int32) data.ConfigEventType {
	if actionID/1000 == 1 {
		return data.EventTypeOnStart
	}
	return data.EventTypeOnEnd
}

func newWaitingEvent(curActionID int32, movePath []int32) protocol.EventInfo {
	return newEventInfo(1000, curActionID, movePath,
		protocol.EventStateWaitingClient, protocol.EventStateRunning)
}

func newEventInfo(id, curActionID int32, movePath []int32, state, prevState protocol.EventState) protocol.EventInfo {
	return protocol.EventInfo{
		ID:                      id,
		CurActionID:             curActionID,
		ActionMovePath:          movePath,
		State:                   state,
		PrevState:               prevState,
		CurActionInfo:           &protocol.ActionInfoNone{},
		CurActionState:          protocol.ActionStateInit,
		PredicatedFailedActions: property.NewSet[int32](),
		StackFrames:             []protocol.EventStackFrame{},
	}
}
