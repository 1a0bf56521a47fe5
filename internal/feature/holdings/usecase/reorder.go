package usecase

import "pocket_backend/internal/feature/holdings/domain/entity"

// SortOrderUpdate는 재정렬 후 영속화할 (id, sortOrder) 쌍입니다.
type SortOrderUpdate struct {
	ID        uint
	SortOrder int
}

// ComputeReorder는 현재 표시 중인(필터링된) 목록 내에서 드래그 정렬을 계산합니다.
//
//  1. 드래그한 종목을 현재 위치에서 제거
//  2. 드롭 대상 바로 앞에 삽입 (targetID가 0이면 맨 뒤에 추가)
//  3. 부분 목록 전체의 sortOrder를 0, 1, 2, …로 다시 부여
//
// 자기 자신 위에 드롭하면 변경 없이 빈 목록을 반환합니다.
// 드래그/드롭 대상이 부분 목록에 없으면 에러를 반환합니다. 탭 간 이동은 지원하지 않습니다.
func ComputeReorder(visible []entity.Holding, draggedID, targetID uint) ([]SortOrderUpdate, error) {
	if draggedID == targetID {
		return nil, nil
	}

	draggedIdx := -1
	for i, h := range visible {
		if h.ID == draggedID {
			draggedIdx = i
			break
		}
	}
	if draggedIdx == -1 {
		return nil, ErrDraggedNotInSubset
	}

	// 드래그한 항목 제거
	reordered := make([]entity.Holding, 0, len(visible))
	reordered = append(reordered, visible[:draggedIdx]...)
	reordered = append(reordered, visible[draggedIdx+1:]...)

	// 삽입 위치 결정
	insertIdx := len(reordered) // targetID == 0: 맨 뒤
	if targetID != 0 {
		insertIdx = -1
		for i, h := range reordered {
			if h.ID == targetID {
				insertIdx = i
				break
			}
		}
		if insertIdx == -1 {
			return nil, ErrTargetNotInSubset
		}
	}

	dragged := visible[draggedIdx]
	reordered = append(reordered[:insertIdx], append([]entity.Holding{dragged}, reordered[insertIdx:]...)...)

	// 0부터 연속된 정수로 재부여
	updates := make([]SortOrderUpdate, 0, len(reordered))
	for i, h := range reordered {
		updates = append(updates, SortOrderUpdate{ID: h.ID, SortOrder: i})
	}
	return updates, nil
}
