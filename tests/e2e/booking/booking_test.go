//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"beautypro/internal/handler/dto/response"
	"beautypro/tests/common/authtest"
	"beautypro/tests/common/dbtest"
	"beautypro/tests/common/httptest"
	"beautypro/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	appointmentsURL = "/api/appointments"
	availabilityURL = "/api/availability?master_id=%s&service_id=%s&date=%s"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// salon fixtures shared by the booking scenarios
type salonFixture struct {
	masterID  uuid.UUID
	serviceID uuid.UUID
	day       time.Time
}

// seedSalon creates a hairdresser with one 60-minute service and picks a
// working day a week out, so every slot of the grid is in the future.
func (s *BookingSuite) seedSalon(t *testing.T) salonFixture {
	t.Helper()

	professionID := dbtest.GetProfessionID(t, s.DB, "Hairdresser")
	serviceID := dbtest.CreateTestService(t, s.DB, "Women's Haircut", 60, professionID)
	masterID := dbtest.CreateTestMaster(t, s.DB, "Anna Petrova", professionID, serviceID)

	future := time.Now().AddDate(0, 0, 7)
	day := time.Date(future.Year(), future.Month(), future.Day(), 0, 0, 0, 0, time.Local)

	return salonFixture{masterID: masterID, serviceID: serviceID, day: day}
}

func (f salonFixture) slotAt(hour, minute int) time.Time {
	return time.Date(f.day.Year(), f.day.Month(), f.day.Day(), hour, minute, 0, 0, time.Local)
}

func (f salonFixture) availabilityPath() string {
	return fmt.Sprintf(availabilityURL, f.masterID, f.serviceID, f.day.Format("2006-01-02"))
}

func bookingBody(f salonFixture, startsAt time.Time) map[string]any {
	return map[string]any{
		"master_id":  f.masterID.String(),
		"service_id": f.serviceID.String(),
		"starts_at":  startsAt.Format(time.RFC3339),
	}
}

func slotStarts(resp response.AvailabilityResponse) map[string]bool {
	starts := make(map[string]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		starts[slot.Start] = true
	}
	return starts
}

// =============================================================================
// TestCreateAppointment - booking happy path and validation
// =============================================================================

func (s *BookingSuite) TestCreateAppointment() {
	s.Run("Normal case: client books a free slot", func() {
		t := s.T()
		f := s.seedSalon(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "scheduled", created.Status)
		require.Equal(t, f.masterID, created.MasterID)
		require.Equal(t, "Women's Haircut", created.ServiceName)
		require.Equal(t, time.Hour, created.EndsAt.Sub(created.StartsAt), "booked footprint must equal the service duration")
	})

	s.Run("Error case: slot off the half-hour grid is rejected", func() {
		t := s.T()
		f := s.seedSalon(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 15)), token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: footprint past closing time is rejected", func() {
		t := s.T()
		f := s.seedSalon(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(19, 30)), token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: master of another profession does not perform the service", func() {
		t := s.T()
		f := s.seedSalon(t)
		nailProfession := dbtest.GetProfessionID(t, s.DB, "Nail technician")
		nailMaster := dbtest.CreateTestMaster(t, s.DB, "Maria Ivanova", nailProfession)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")

		body := bookingBody(f, f.slotAt(10, 0))
		body["master_id"] = nailMaster.String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: unknown master returns 404", func() {
		t := s.T()
		f := s.seedSalon(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")

		body := bookingBody(f, f.slotAt(10, 0))
		body["master_id"] = uuid.New().String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: unauthenticated booking is rejected", func() {
		t := s.T()
		f := s.seedSalon(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestBookingConflict - the exclusion constraint under contention
// =============================================================================

func (s *BookingSuite) TestBookingConflict() {
	s.Run("Sequential double booking of the same slot returns 409", func() {
		t := s.T()
		f := s.seedSalon(t)
		firstToken := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")
		secondToken := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000002", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), firstToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), secondToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Overlapping slot of a longer footprint returns 409", func() {
		t := s.T()
		f := s.seedSalon(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// 10:30 start overlaps the 10:00-11:00 booking
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 30)), token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Back-to-back slots do not conflict", func() {
		t := s.T()
		f := s.seedSalon(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(11, 0)), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Concurrent requests for one slot: exactly one wins", func() {
		t := s.T()
		f := s.seedSalon(t)

		const clients = 8
		tokens := make([]string, clients)
		for i := range clients {
			phone := fmt.Sprintf("+1555000010%d", i)
			tokens[i] = authtest.CreateAndLogin(t, s.DB, s.Router, phone, "client")
		}

		body := bookingBody(f, f.slotAt(14, 0))
		codes := make([]int, clients)

		var wg sync.WaitGroup
		for i := range clients {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, tokens[i])
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, 1, created, "exactly one request may win the slot")
		require.Equal(t, clients-1, conflicted)
	})
}

// =============================================================================
// TestAvailability - grid computation against real bookings
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: free day exposes the full grid", func() {
		t := s.T()
		f := s.seedSalon(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, f.availabilityPath(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
		// 09:00-20:00, 30-minute grid, 60-minute service: 21 starts
		require.Len(t, resp.Slots, 21)
		require.Equal(t, "09:00", resp.Slots[0].Start)
		require.Equal(t, "19:00", resp.Slots[len(resp.Slots)-1].Start)
	})

	s.Run("Booked hour shadows every overlapping start", func() {
		t := s.T()
		f := s.seedSalon(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, f.availabilityPath(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
		require.Len(t, resp.Slots, 18)

		starts := slotStarts(resp)
		require.True(t, starts["09:00"], "ending exactly at the booking start stays free")
		require.True(t, starts["11:00"], "starting exactly at the booking end stays free")
		for _, shadowed := range []string{"09:30", "10:00", "10:30"} {
			require.False(t, starts[shadowed], "start %s overlaps the 10:00 booking", shadowed)
		}
	})

	s.Run("An advertised slot can always be booked, and returns once canceled", func() {
		t := s.T()
		f := s.seedSalon(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, f.availabilityPath(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var before response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &before))
		require.NotEmpty(t, before.Slots)
		offered := before.Slots[0]

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, offered.StartsAt), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, f.availabilityPath(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var during response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &during))
		require.False(t, slotStarts(during)[offered.Start], "the booked start must leave the grid")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			appointmentsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, f.availabilityPath(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var after response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &after))
		require.True(t, slotStarts(after)[offered.Start], "the canceled start must return to the grid")
		require.Len(t, after.Slots, len(before.Slots))
	})
}

// =============================================================================
// TestCancelAppointment - lifecycle and slot reuse
// =============================================================================

func (s *BookingSuite) TestCancelAppointment() {
	s.Run("Canceling frees the slot for another client", func() {
		t := s.T()
		f := s.seedSalon(t)
		firstToken := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")
		secondToken := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000002", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), firstToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		// the slot is taken
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), secondToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			appointmentsURL+"/"+created.ID.String(), nil, firstToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var canceled response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &canceled))
		require.Equal(t, "canceled", canceled.Status)

		// canceled rows fall out of the exclusion constraint
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), secondToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: another client cannot cancel the appointment", func() {
		t := s.T()
		f := s.seedSalon(t)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000002", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			appointmentsURL+"/"+created.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: double cancel returns 409", func() {
		t := s.T()
		f := s.seedSalon(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		cancelURL := appointmentsURL + "/" + created.ID.String()
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, cancelURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, cancelURL, nil, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestCompleteAppointment - operator-side transition
// =============================================================================

func (s *BookingSuite) TestCompleteAppointment() {
	s.Run("Admin completes a scheduled appointment, cancel afterwards fails", func() {
		t := s.T()
		f := s.seedSalon(t)
		clientToken := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000099", "admin")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), clientToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			appointmentsURL+"/"+created.ID.String()+"/complete", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var completed response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &completed))
		require.Equal(t, "completed", completed.Status)

		// a completed visit is final
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			appointmentsURL+"/"+created.ID.String(), nil, clientToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: clients cannot complete appointments", func() {
		t := s.T()
		f := s.seedSalon(t)
		clientToken := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), clientToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			appointmentsURL+"/"+created.ID.String()+"/complete", nil, clientToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestListAppointments - the client's own history
// =============================================================================

func (s *BookingSuite) TestListAppointments() {
	s.Run("Client sees only their own appointments, filtered by status", func() {
		t := s.T()
		f := s.seedSalon(t)
		firstToken := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000001", "client")
		secondToken := authtest.CreateAndLogin(t, s.DB, s.Router, "+15550000002", "client")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(10, 0)), firstToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var first response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &first))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(12, 0)), firstToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			bookingBody(f, f.slotAt(15, 0)), secondToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// cancel the first one so the status filter has something to separate
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			appointmentsURL+"/"+first.ID.String(), nil, firstToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL, nil, firstToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var all []response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &all))
		require.Len(t, all, 2, "the other client's appointment must not leak in")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL+"?status=scheduled", nil, firstToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var scheduled []response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &scheduled))
		require.Len(t, scheduled, 1)
		require.Equal(t, "scheduled", scheduled[0].Status)
	})
}
