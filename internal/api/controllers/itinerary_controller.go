package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdeck/internal/models/request_models"
	"tripdeck/internal/models/response_models"
	"tripdeck/internal/services"
	"tripdeck/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	dragService      services.DragServiceInterface
	snapshotService  services.SnapshotServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	dragService services.DragServiceInterface,
	snapshotService services.SnapshotServiceInterface) *ItineraryController {

	return &ItineraryController{
		itineraryService: itineraryService,
		dragService:      dragService,
		snapshotService:  snapshotService,
	}
}

// GetItinerary godoc
// @Summary Get the current itinerary
// @Description Fetch the session's itinerary, days in order with their activities
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.ItineraryResponse
// @Router /itinerary [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	sessionID := c.GetString("session_id")

	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildItineraryResponse(itinerary), "Itinerary fetched successfully")
}

// AddDay godoc
// @Summary Add a day
// @Description Append a new day with the next sequential title
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.DayResponse
// @Router /itinerary/days [post]
func (i *ItineraryController) AddDay(c *gin.Context) {
	sessionID := c.GetString("session_id")

	day, err := i.itineraryService.AddDay(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.DayResponse{
		ID:         day.ID,
		Title:      day.Title,
		Activities: []response_models.ActivityResponse{},
	}, "Day added successfully")
}

// RemoveDay godoc
// @Summary Remove a day
// @Description Remove a day and its activities; the last remaining day cannot be removed
// @Tags Itinerary
// @Produce json
// @Param dayId path string true "Day ID"
// @Failure 409 {object} utils.APIResponse
// @Router /itinerary/days/{dayId} [delete]
func (i *ItineraryController) RemoveDay(c *gin.Context) {
	sessionID := c.GetString("session_id")
	dayID := c.Param("dayId")
	if dayID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Day ID is required")
		return
	}

	if err := i.itineraryService.RemoveDay(c.Request.Context(), sessionID, dayID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Day removed successfully")
}

// AddActivity godoc
// @Summary Add an attraction to the itinerary
// @Description Materialize a catalog attraction as an activity on the target day (day 1 by default)
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.AddActivityRequest true "Attraction ID, optional Day ID"
// @Success 200 {object} response_models.ActivityResponse
// @Router /itinerary/activities [post]
func (i *ItineraryController) AddActivity(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AttractionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "AttractionID is required")
		return
	}

	act, err := i.itineraryService.AddActivityFromCatalog(c.Request.Context(), sessionID, req.AttractionID, req.DayID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ActivityResponse{
		ID:                 act.ID,
		Name:               act.Name,
		Description:        act.Description,
		Price:              act.Price,
		Time:               act.Time,
		Type:               act.Type,
		SourceAttractionID: act.SourceAttractionID,
	}, "Activity added to itinerary")
}

// RemoveActivity godoc
// @Summary Remove an activity
// @Description Remove the activity wherever it lives; unknown ids are ignored
// @Tags Itinerary
// @Produce json
// @Param activityId path string true "Activity ID"
// @Router /itinerary/activities/{activityId} [delete]
func (i *ItineraryController) RemoveActivity(c *gin.Context) {
	sessionID := c.GetString("session_id")
	activityID := c.Param("activityId")
	if activityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	if err := i.itineraryService.RemoveActivity(c.Request.Context(), sessionID, activityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity removed successfully")
}

// UpdateActivityTime godoc
// @Summary Update an activity's time
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param request body request_models.UpdateActivityTimeRequest true "New time"
// @Router /itinerary/activities/{activityId}/time [patch]
func (i *ItineraryController) UpdateActivityTime(c *gin.Context) {
	sessionID := c.GetString("session_id")
	activityID := c.Param("activityId")

	var req request_models.UpdateActivityTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Time == "" {
		utils.RespondError(c, http.StatusBadRequest, "Time is required")
		return
	}

	if err := i.itineraryService.UpdateActivityTime(c.Request.Context(), sessionID, activityID, req.Time); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity time updated")
}

// Reorder godoc
// @Summary Reorder activities within a day
// @Description Reassign a day's activity order to the given id sequence
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ReorderRequest true "Day ID and ordered activity IDs"
// @Failure 409 {object} utils.APIResponse
// @Router /itinerary/reorder [post]
func (i *ItineraryController) Reorder(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var req request_models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DayID == "" {
		utils.RespondError(c, http.StatusBadRequest, "DayID is required")
		return
	}

	if err := i.itineraryService.ReorderWithinDay(c.Request.Context(), sessionID, req.DayID, req.ActivityIDs); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Day reordered successfully")
}

// Move godoc
// @Summary Move an activity between days
// @Description Remove the activity from the source day and insert it at the target index in the destination day
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.MoveActivityRequest true "Activity, source day, destination day, target index"
// @Router /itinerary/move [post]
func (i *ItineraryController) Move(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var req request_models.MoveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActivityID == "" || req.FromDayID == "" || req.ToDayID == "" {
		utils.RespondError(c, http.StatusBadRequest, "ActivityID, FromDayID and ToDayID are required")
		return
	}

	err := i.itineraryService.MoveActivityAcrossDays(c.Request.Context(), sessionID, req.ActivityID, req.FromDayID, req.ToDayID, req.TargetIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity moved successfully")
}

// Drop godoc
// @Summary Reconcile a drag-and-drop event
// @Description Translate a completed drop into a reorder (same day) or a move (across days)
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.DropEventRequest true "Drop event"
// @Router /itinerary/drop [post]
func (i *ItineraryController) Drop(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var req request_models.DropEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid drop event")
		return
	}

	err := i.dragService.ReconcileDrop(c.Request.Context(), sessionID, services.DropEvent{
		SourceDayID: req.SourceDayID,
		DestDayID:   req.DestDayID,
		ActivityID:  req.ActivityID,
		NewIndex:    req.NewIndex,
		DestOrder:   req.DestOrder,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Drop reconciled successfully")
}

// Save godoc
// @Summary Save the itinerary
// @Description Persist the itinerary and a destination summary for this session
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SaveItineraryRequest true "Destination metadata"
// @Failure 503 {object} utils.APIResponse
// @Router /itinerary/save [post]
func (i *ItineraryController) Save(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid save request")
		return
	}

	if err := i.snapshotService.Save(c.Request.Context(), sessionID, req.DestinationName, req.DestinationCountry); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary saved successfully")
}

// Load godoc
// @Summary Load the saved itinerary
// @Description Replace the session's in-memory itinerary with the saved one, if any
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.ItineraryResponse
// @Router /itinerary/load [post]
func (i *ItineraryController) Load(c *gin.Context) {
	sessionID := c.GetString("session_id")

	itinerary, err := i.snapshotService.Load(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if itinerary == nil {
		utils.RespondSuccess(c, nil, "No saved itinerary found")
		return
	}

	utils.RespondSuccess(c, response_models.BuildItineraryResponse(itinerary), "Itinerary loaded successfully")
}
