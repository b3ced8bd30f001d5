package repository

import (
	"context"
	"time"

	"slotbook/internal/domain/appointment"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

// Create inserts the appointment and its service links in the caller's
// transaction. An overlapping non-canceled slot trips the exclusion
// constraint, surfaced as KindConflict.
func (r *AppointmentRepository) Create(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error) {
	client := appt.ClientInfo()
	slot := appt.Slot()

	var phone *string
	if client.Phone() != "" {
		p := client.Phone()
		phone = &p
	}
	var note *string
	if appt.Note() != "" {
		n := appt.Note()
		note = &n
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO appointments (id, client_name, client_email, client_phone, slot, status, price_cents, note)
		VALUES ($1, $2, $3, $4, tstzrange($5, $6, '[)'), $7, $8, $9)
		RETURNING id`,
		appt.ID(),
		client.Name(),
		client.Email(),
		pgconv.StringPtrToPgtype(phone),
		pgconv.TimeToPgtype(slot.Start()),
		pgconv.TimeToPgtype(slot.End()),
		string(appt.Status()),
		appt.Price().Cents(),
		pgconv.StringPtrToPgtype(note),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}

	for i, serviceID := range appt.ServiceIDs() {
		_, err := tx.Exec(ctx, `
			INSERT INTO appointment_services (appointment_id, service_id, position)
			VALUES ($1, $2, $3)`,
			id, serviceID, i)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to link appointment service", err)
		}
	}

	return id, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row := tx.QueryRow(ctx, `
		SELECT a.id, a.client_name, a.client_email, a.client_phone,
		       lower(a.slot), upper(a.slot), a.status, a.price_cents, a.note,
		       a.created_at, a.updated_at,
		       COALESCE(array_agg(s.service_id ORDER BY s.position) FILTER (WHERE s.service_id IS NOT NULL), '{}')
		FROM appointments a
		LEFT JOIN appointment_services s ON s.appointment_id = a.id
		WHERE a.id = $1
		GROUP BY a.id`, id)

	var (
		apptID               uuid.UUID
		clientName           string
		clientEmail          string
		clientPhone          *string
		slotStart, slotEnd   time.Time
		status               string
		priceCents           int64
		note                 *string
		createdAt, updatedAt time.Time
		serviceIDs           []uuid.UUID
	)
	err := row.Scan(
		&apptID, &clientName, &clientEmail, &clientPhone,
		&slotStart, &slotEnd, &status, &priceCents, &note,
		&createdAt, &updatedAt, &serviceIDs,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}

	return reconstructAppointment(
		apptID, clientName, clientEmail, clientPhone,
		slotStart, slotEnd, status, priceCents, note,
		createdAt, updatedAt, serviceIDs,
	)
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) error {
	tag, err := tx.Exec(ctx, `
		UPDATE appointments
		SET status = $2, updated_at = now()
		WHERE id = $1`,
		appt.ID(), string(appt.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func reconstructAppointment(
	id uuid.UUID,
	clientName, clientEmail string,
	clientPhone *string,
	slotStart, slotEnd time.Time,
	status string,
	priceCents int64,
	note *string,
	createdAt, updatedAt time.Time,
	serviceIDs []uuid.UUID,
) (*appointment.Appointment, error) {
	client, err := appointment.NewClient(clientName, clientEmail, derefString(clientPhone))
	if err != nil {
		return nil, errs.Wrap(err, "stored client data is invalid")
	}
	slot, err := appointment.NewTimeSlot(slotStart, slotEnd)
	if err != nil {
		return nil, errs.Wrap(err, "stored slot is invalid")
	}
	st := appointment.Status(status)
	if !st.IsValid() {
		return nil, errs.New("stored status is invalid: " + status)
	}
	price, err := appointment.NewMoney(priceCents)
	if err != nil {
		return nil, errs.Wrap(err, "stored price is invalid")
	}

	return appointment.ReconstructAppointment(
		id, client, slot, serviceIDs, st, price, derefString(note), createdAt, updatedAt,
	), nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
