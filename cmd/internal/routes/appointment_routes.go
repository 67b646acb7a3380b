package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bookings/cmd/internal/service"
	"bookings/cmd/internal/utils"
	"bookings/cmd/internal/utils/apierror"
)

type AppointmentService interface {
	GetAppointments() ([]*service.AppointmentResponse, apierror.ErrorResponse)
	GetTimeSlots() ([]*service.TimeSlotResponse, apierror.ErrorResponse)
	GetAvailableTimeSlots(dateMillis int64, roomNumber int) ([]*service.TimeSlotResponse, apierror.ErrorResponse)
	GetAppointment(id uuid.UUID) (*service.AppointmentResponse, apierror.ErrorResponse)
	CreateAppointment(req *service.AppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	DeleteAppointment(id uuid.UUID) apierror.ErrorResponse
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) GetAppointments(c echo.Context) error {
	appts, apierr := a.AppointmentService.GetAppointments()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"appointments": appts}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) GetTimeSlots(c echo.Context) error {
	slots, apierr := a.AppointmentService.GetTimeSlots()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"time_slots": slots}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) GetAvailableTimeSlots(c echo.Context) error {
	dateStr := c.QueryParam("date")
	if dateStr == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("date"))
	}
	roomStr := c.QueryParam("roomNumber")
	if roomStr == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("roomNumber"))
	}

	dateMillis, err := parseDateParam(dateStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidDateError)
	}
	roomNumber, err := strconv.Atoi(roomStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidRoomError)
	}

	slots, apierr := a.AppointmentService.GetAvailableTimeSlots(dateMillis, roomNumber)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"time_slots": slots}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) GetAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(http.StatusBadRequest, "ID is not a valid UUID")
		return c.JSON(errResp.Code(), errResp)
	}

	appt, apierr := a.AppointmentService.GetAppointment(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appt)
}

func (a *DefaultAppointmentRoute) CreateAppointment(c echo.Context) error {
	var req service.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.CreateAppointment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/appointments/%s", appt.ID))
	return c.JSON(http.StatusCreated, appt)
}

func (a *DefaultAppointmentRoute) DeleteAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errResp := apierror.NewSimple(http.StatusBadRequest, "ID is not a valid UUID")
		return c.JSON(errResp.Code(), errResp)
	}

	if apierr := a.AppointmentService.DeleteAppointment(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseDateParam accepts an RFC3339 timestamp or a plain YYYY-MM-DD date
// (both are sent by the booking form) and returns epoch millis.
func parseDateParam(raw string) (int64, error) {
	if millis, err := utils.FromEpoch(raw); err == nil {
		return millis, nil
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return 0, errors.New("invalid date format, expected RFC3339 or YYYY-MM-DD")
	}
	return t.UTC().UnixMilli(), nil
}
