package waypoint

var NormalizeAddr = normalizeAddr
