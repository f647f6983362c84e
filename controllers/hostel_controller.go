package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PrinceS45/SIH-CampusOne-sub000/dto"
	"github.com/PrinceS45/SIH-CampusOne-sub000/response"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services"
)

type HostelController struct {
	hostelService     *services.HostelService
	allocationService *services.AllocationService
}

func NewHostelController(hostelService *services.HostelService, allocationService *services.AllocationService) *HostelController {
	return &HostelController{
		hostelService:     hostelService,
		allocationService: allocationService,
	}
}

// CreateHostel registers a hostel.
func (ctrl *HostelController) CreateHostel(c *gin.Context) {
	var req dto.CreateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Hostel payload is not valid: "+err.Error())
		return
	}

	hostel := req.ToModel()
	if err := ctrl.hostelService.Create(c.Request.Context(), hostel); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, hostel)
}

// GetHostels lists hostels, optionally filtered by type and status.
func (ctrl *HostelController) GetHostels(c *gin.Context) {
	hostelType, _ := strconv.Atoi(c.Query("type"))
	status, _ := strconv.Atoi(c.Query("status"))

	hostels, err := ctrl.hostelService.List(c.Request.Context(), hostelType, status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, hostels, len(hostels))
}

// GetHostelByID returns one hostel with its rooms.
func (ctrl *HostelController) GetHostelByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	hostel, err := ctrl.hostelService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, hostel)
}

// UpdateHostel applies partial field changes.
func (ctrl *HostelController) UpdateHostel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		response.ValidationError(c, "Update payload is not valid")
		return
	}

	hostel, err := ctrl.hostelService.Update(c.Request.Context(), id, updates)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, hostel)
}

// DeleteHostel removes a hostel that has no occupied rooms.
func (ctrl *HostelController) DeleteHostel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.hostelService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Hostel deleted", nil)
}

// GetHostelRooms lists rooms of a hostel, filtered.
func (ctrl *HostelController) GetHostelRooms(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	filter := services.RoomFilter{
		AvailableOnly: c.Query("available") == "true",
	}
	filter.Status, _ = strconv.Atoi(c.Query("status"))
	filter.Floor, _ = strconv.Atoi(c.Query("floor"))

	rooms, err := ctrl.hostelService.ListRooms(c.Request.Context(), id, filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, rooms, len(rooms))
}

// CreateRoom adds a room under a hostel.
func (ctrl *HostelController) CreateRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Room payload is not valid: "+err.Error())
		return
	}

	room := req.ToModel(id)
	if err := ctrl.hostelService.CreateRoom(c.Request.Context(), room); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, room)
}

// GetRoom returns one room with its hostel.
func (ctrl *HostelController) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	room, err := ctrl.hostelService.GetRoom(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, room)
}

// UpdateRoom applies partial field changes to a room.
func (ctrl *HostelController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		response.ValidationError(c, "Update payload is not valid")
		return
	}

	room, err := ctrl.hostelService.UpdateRoom(c.Request.Context(), id, updates)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, room)
}

// ChangeRoomStatus sets or clears a manual room status override.
func (ctrl *HostelController) ChangeRoomStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Status is required")
		return
	}

	room, err := ctrl.hostelService.ChangeRoomStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, room)
}

// DeleteRoom removes an empty room.
func (ctrl *HostelController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.hostelService.DeleteRoom(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Room deleted", nil)
}

// Allocate assigns a room to a student.
func (ctrl *HostelController) Allocate(c *gin.Context) {
	var req dto.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "studentId and roomId are required")
		return
	}

	student, room, err := ctrl.allocationService.Allocate(c.Request.Context(), req.StudentCode, req.RoomID, userIDFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.hostelService.InvalidateOccupancyCache(c.Request.Context())
	response.SuccessWithMessage(c, "Room allocated", gin.H{
		"student": student,
		"room":    room,
	})
}

// Deallocate releases a student's room.
func (ctrl *HostelController) Deallocate(c *gin.Context) {
	var req dto.DeallocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "studentId is required")
		return
	}

	student, room, err := ctrl.allocationService.Deallocate(c.Request.Context(), req.StudentCode, userIDFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.hostelService.InvalidateOccupancyCache(c.Request.Context())
	response.SuccessWithMessage(c, "Room deallocated", gin.H{
		"student": student,
		"room":    room,
	})
}

// GetOccupancyStats returns per-hostel occupancy, served from cache when warm.
func (ctrl *HostelController) GetOccupancyStats(c *gin.Context) {
	stats, err := ctrl.hostelService.OccupancyStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, stats)
}
