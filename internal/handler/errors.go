package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wafflestudio/SNUDAY-server/internal/common"
	"github.com/wafflestudio/SNUDAY-server/pkg/logger"
)

type errorMapping struct {
	status  int
	message string
}

// 서비스 계층의 sentinel 에러를 HTTP 상태/메시지로 변환하는 테이블.
// 존재하지 않는 리소스 참조는 관례상 400으로 응답한다.
var errorMappings = map[error]errorMapping{
	common.ErrChannelNotFound:   {http.StatusBadRequest, "잘못된 채널 ID입니다."},
	common.ErrNoticeNotFound:    {http.StatusBadRequest, "잘못된 공지 ID입니다."},
	common.ErrEventNotFound:     {http.StatusBadRequest, "잘못된 일정 ID입니다."},
	common.ErrUserNotFound:      {http.StatusBadRequest, "잘못된 사용자입니다."},
	common.ErrManagerNotFound:   {http.StatusBadRequest, "잘못된 매니저입니다."},
	common.ErrManagerRequired:   {http.StatusBadRequest, "매니저가 있어야 합니다."},
	common.ErrDuplicateName:     {http.StatusBadRequest, "이미 사용중인 채널 이름입니다."},
	common.ErrDuplicateUsername: {http.StatusBadRequest, "이미 사용중인 아이디입니다."},
	common.ErrDuplicateEmail:    {http.StatusBadRequest, "이미 사용중인 이메일입니다."},
	common.ErrPrivateNoSub:      {http.StatusBadRequest, "비공개 채널에 구독자가 한 명도 없어, 비공개 채널에 접근할 수 없습니다."},
	common.ErrPrivateChannel:    {http.StatusBadRequest, "비공개 채널입니다."},
	common.ErrAlreadySubscribed: {http.StatusBadRequest, "이미 구독 중인 채널입니다."},
	common.ErrNotSubscribed:     {http.StatusBadRequest, "구독하지 않은 채널입니다."},
	common.ErrTargetSubscribed:  {http.StatusBadRequest, "이미 구독자인 사용자입니다."},
	common.ErrNeverRequested:    {http.StatusBadRequest, "구독 요청한 적 없는 사용자입니다."},
	common.ErrInvalidColor:      {http.StatusBadRequest, "잘못된 색상입니다."},
	common.ErrInvalidInterval:   {http.StatusBadRequest, "일정의 시작이 끝보다 늦을 수 없습니다."},
	common.ErrTimeRequired:      {http.StatusBadRequest, "시간이 있는 일정은 시작/종료 시각이 모두 필요합니다."},
	common.ErrQueryTooShort:     {http.StatusBadRequest, "검색어를 두 글자 이상 입력해주세요"},
	common.ErrSamePassword:      {http.StatusBadRequest, "이전과 같은 비밀번호는 사용할 수 없습니다."},
	common.ErrWrongPassword:     {http.StatusBadRequest, "비밀번호가 일치하지 않습니다."},
	common.ErrInvalidInput:      {http.StatusBadRequest, "잘못된 요청입니다."},
	common.ErrUnauthorized:      {http.StatusUnauthorized, "인증이 필요합니다."},
	common.ErrInvalidCredentials: {
		http.StatusUnauthorized, "아이디 또는 비밀번호가 올바르지 않습니다.",
	},
	common.ErrForbidden:     {http.StatusForbidden, "매니저 권한이 필요합니다."},
	common.ErrReadForbidden: {http.StatusForbidden, "구독자만 볼 수 있는 채널입니다."},
}

func respondError(c *gin.Context, err error) {
	for sentinel, m := range errorMappings {
		if errors.Is(err, sentinel) {
			common.ErrorResponse(c, m.status, m.message)
			return
		}
	}
	logger.Error("unhandled service error: %v", err)
	common.ErrorResponse(c, http.StatusInternalServerError, "서버 내부 오류가 발생했습니다.")
}
